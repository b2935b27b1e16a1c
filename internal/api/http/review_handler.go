package http

import (
	"net/http"

	"library-of-things-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type createReviewRequest struct {
	RentalID int32   `json:"rentalId"`
	Rating   int32   `json:"rating"`
	Comment  *string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	reviewerID, _ := UserIDFromContext(r.Context())

	var req createReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.reviewSvc.CreateReview(r.Context(), reviewerID, req.RentalID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapReview(review))
}
