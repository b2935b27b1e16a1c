package http

import (
	"net/http"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	ItemID    int32  `json:"itemId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	borrowerID, _ := UserIDFromContext(r.Context())

	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), borrowerID, req.ItemID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapRental(rental))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserIDFromContext(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.rentalSvc.UpdateRentalStatus(r.Context(), actorID, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalStatusView{
		ID:        rental.ID,
		Status:    string(rental.Status),
		UpdatedAt: rental.UpdatedAt,
	})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserIDFromContext(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), actorID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapRental(rental))
}

func (h *RentalHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := UserIDFromContext(r.Context())

	rentals, err := h.rentalSvc.ListIncoming(r.Context(), ownerID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeRentalList(w, rentals)
}

func (h *RentalHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	borrowerID, _ := UserIDFromContext(r.Context())

	rentals, err := h.rentalSvc.ListOutgoing(r.Context(), borrowerID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeRentalList(w, rentals)
}

func writeRentalList(w http.ResponseWriter, rentals []domain.Rental) {
	views := make([]rentalView, len(rentals))
	for i := range rentals {
		views[i] = mapRental(&rentals[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rentals":      views,
		"totalRentals": len(views),
	})
}
