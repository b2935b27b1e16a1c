package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"library-of-things-backend/internal/service"
)

type UserHandler struct {
	userSvc   service.UserService
	reviewSvc service.ReviewService
}

func NewUserHandler(userSvc service.UserService, reviewSvc service.ReviewService) *UserHandler {
	return &UserHandler{userSvc: userSvc, reviewSvc: reviewSvc}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized", Message: "Missing identity"})
		return
	}

	profile, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProfile(profile))
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.userSvc.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProfile(profile))
}

func (h *UserHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewSvc.ListUserReviews(r.Context(), id)
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

// pathID parses a positive integer path variable, answering 400 itself
// when the value is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeBadRequest(w, "Invalid "+name+" parameter")
		return 0, false
	}
	return int32(id), true
}
