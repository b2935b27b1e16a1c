package service

import (
	"context"
	"errors"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/repository"
)

type reviewService struct {
	store repository.Store
}

func NewReviewService(store repository.Store) ReviewService {
	return &reviewService{store: store}
}

// CreateReview lets the borrower of a Completed rental leave exactly one
// review for it.
func (s *reviewService) CreateReview(ctx context.Context, reviewerID, rentalID, rating int32, comment *string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("Rating must be between 1 and 5")
	}
	if comment != nil && len(*comment) > 500 {
		return nil, domain.Validationf("Comment must be at most 500 characters")
	}

	var review *domain.Review
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		rental, err := tx.Rentals().GetByID(ctx, rentalID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Validationf("Rental not found")
		}
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusCompleted {
			return domain.Validationf("Rental must be Completed before leaving a review")
		}
		if rental.BorrowerID != reviewerID {
			return domain.Forbiddenf("You can only review rentals you were the borrower for")
		}

		exists, err := tx.Reviews().ExistsForRental(ctx, rentalID, reviewerID)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflictf("You have already reviewed this rental")
		}

		rv := &domain.Review{
			RentalID:   rentalID,
			ReviewerID: reviewerID,
			Rating:     rating,
			Comment:    comment,
		}
		if err := tx.Reviews().Create(ctx, rv); err != nil {
			return err
		}
		rv.ReviewerName = rental.BorrowerName
		review = rv
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Review submitted", "review_id", review.ID, "rental_id", rentalID)
	return review, nil
}

func (s *reviewService) ListItemReviews(ctx context.Context, itemID int32) ([]domain.Review, error) {
	if _, err := s.store.Items().GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.store.Reviews().ListByItem(ctx, itemID)
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID int32) ([]domain.Review, error) {
	return s.store.Reviews().ListByReviewer(ctx, userID)
}
