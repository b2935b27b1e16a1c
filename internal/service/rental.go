package service

import (
	"context"
	"errors"
	"math"
	"time"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	store repository.Store
}

func NewRentalService(store repository.Store) RentalService {
	return &rentalService{store: store}
}

// CreateRental gates new bookings: date sanity, item availability, no
// self-rental, and no overlap with a blocking rental. The conflict check
// and the insert share one transaction so two concurrent requests cannot
// both observe a free slot.
func (s *rentalService) CreateRental(ctx context.Context, borrowerID, itemID int32, startDateStr, endDateStr string) (*domain.Rental, error) {
	start, err := time.Parse(dateLayout, startDateStr)
	if err != nil {
		return nil, domain.Validationf("Start date must be yyyy-MM-dd")
	}
	end, err := time.Parse(dateLayout, endDateStr)
	if err != nil {
		return nil, domain.Validationf("End date must be yyyy-MM-dd")
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return nil, domain.Validationf("Start date must be today or in the future")
	}
	if !end.After(start) {
		return nil, domain.Validationf("End date must be after start date")
	}

	var rental *domain.Rental
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		item, err := tx.Items().GetByID(ctx, itemID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Validationf("Item not found")
		}
		if err != nil {
			return err
		}
		if !item.IsAvailable {
			return domain.Validationf("Item is not available")
		}
		if item.OwnerID == borrowerID {
			return domain.Validationf("You cannot rent your own item")
		}

		overlapping, err := tx.Rentals().CountOverlapping(ctx, itemID, startDateStr, endDateStr, 0)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.Conflictf("This item already has an approved rental for these dates")
		}

		days := int32(math.Ceil(end.Sub(start).Hours() / 24))
		rt := &domain.Rental{
			ItemID:     itemID,
			BorrowerID: borrowerID,
			StartDate:  start.Format(dateLayout),
			EndDate:    end.Format(dateLayout),
			Status:     domain.RentalStatusRequested,
			TotalPrice: float64(days) * item.DailyRate,
		}
		if err := tx.Rentals().Create(ctx, rt); err != nil {
			return err
		}

		rt.OwnerID = item.OwnerID
		rt.ItemTitle = item.Title
		if item.Owner != nil {
			rt.OwnerName = item.Owner.Name()
		}
		rental = rt
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if borrower, err := s.store.Users().GetByID(ctx, borrowerID); err == nil {
		rental.BorrowerName = borrower.Name()
	}

	logger.Info("Rental requested",
		"rental_id", rental.ID, "item_id", itemID, "borrower_id", borrowerID,
		"start_date", rental.StartDate, "end_date", rental.EndDate)
	return rental, nil
}

// UpdateRentalStatus drives the rental lifecycle. The transition table
// decides whether the edge is legal and which party may traverse it;
// the availability side effects commit in the same transaction as the
// status change.
func (s *rentalService) UpdateRentalStatus(ctx context.Context, actorID, rentalID int32, requestedStatus string) (*domain.Rental, error) {
	if !domain.ValidRentalStatus(requestedStatus) {
		return nil, domain.Validationf("Unknown status %q", requestedStatus)
	}
	to := domain.RentalStatus(requestedStatus)

	var rental *domain.Rental
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		rt, err := tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}

		if _, err := rt.Advance(actorID, to); err != nil {
			return err
		}

		// First approval wins: a competing request may have claimed the
		// dates between this rental's creation and now.
		if to == domain.RentalStatusApproved {
			overlapping, err := tx.Rentals().CountOverlapping(ctx, rt.ItemID, rt.StartDate, rt.EndDate, rt.ID)
			if err != nil {
				return err
			}
			if overlapping > 0 {
				return domain.Conflictf("This item already has an approved rental for these dates")
			}
		}

		updatedAt, err := tx.Rentals().UpdateStatus(ctx, rentalID, to)
		if err != nil {
			return err
		}

		switch to {
		case domain.RentalStatusApproved:
			err = tx.Items().SetAvailability(ctx, rt.ItemID, false)
		case domain.RentalStatusCompleted:
			err = tx.Items().SetAvailability(ctx, rt.ItemID, true)
		}
		if err != nil {
			return err
		}

		rt.Status = to
		rt.UpdatedAt = updatedAt
		rental = rt
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Rental status updated",
		"rental_id", rentalID, "status", rental.Status, "actor_id", actorID)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if _, ok := rt.RoleOf(actorID); !ok {
		return nil, domain.Forbiddenf("Access denied")
	}
	return rt, nil
}

func (s *rentalService) ListIncoming(ctx context.Context, ownerID int32, status string) ([]domain.Rental, error) {
	if status != "" && !domain.ValidRentalStatus(status) {
		return nil, domain.Validationf("Unknown status %q", status)
	}
	return s.store.Rentals().ListByItemOwner(ctx, ownerID, status)
}

func (s *rentalService) ListOutgoing(ctx context.Context, borrowerID int32, status string) ([]domain.Rental, error) {
	if status != "" && !domain.ValidRentalStatus(status) {
		return nil, domain.Validationf("Unknown status %q", status)
	}
	return s.store.Rentals().ListByBorrower(ctx, borrowerID, status)
}
