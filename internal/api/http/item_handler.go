package http

import (
	"net/http"
	"strconv"

	"library-of-things-backend/internal/service"
)

type ItemHandler struct {
	itemSvc   service.ItemService
	reviewSvc service.ReviewService
}

func NewItemHandler(itemSvc service.ItemService, reviewSvc service.ReviewService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc, reviewSvc: reviewSvc}
}

type createItemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DailyRate   float64 `json:"dailyRate"`
	CategoryID  int32   `json:"categoryId"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req createItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.itemSvc.CreateItem(r.Context(), userID, service.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		DailyRate:   req.DailyRate,
		CategoryID:  req.CategoryID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapItem(item))
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.itemSvc.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItem(item))
}

type updateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DailyRate   *float64 `json:"dailyRate"`
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.itemSvc.UpdateItem(r.Context(), userID, id, service.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		DailyRate:   req.DailyRate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItem(item))
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt32(q.Get("page"), 1)
	pageSize := queryInt32(q.Get("pageSize"), 20)
	availableOnly := q.Get("available") == "true"

	items, total, err := h.itemSvc.ListItems(r.Context(), q.Get("category"), availableOnly, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]itemView, len(items))
	for i := range items {
		views[i] = mapItem(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      views,
		"totalItems": total,
		"page":       page,
		"pageSize":   pageSize,
	})
}

func (h *ItemHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeBadRequest(w, "lat and lon query parameters are required")
		return
	}
	radius := 5.0
	if raw := q.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeBadRequest(w, "Invalid radius parameter")
			return
		}
		radius = parsed
	}

	items, err := h.itemSvc.NearbyItems(r.Context(), lat, lon, radius, q.Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]nearbyItemView, len(items))
	for i := range items {
		views[i] = mapNearbyItem(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":          views,
		"searchLocation": map[string]float64{"latitude": lat, "longitude": lon},
		"radius":         radius,
		"totalResults":   len(views),
	})
}

func (h *ItemHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewSvc.ListItemReviews(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]reviewView, len(reviews))
	for i := range reviews {
		views[i] = mapReview(&reviews[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews":      views,
		"totalReviews": len(views),
	})
}

func (h *ItemHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.itemSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]categoryView, len(categories))
	for i, c := range categories {
		views[i] = categoryView{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": views})
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
