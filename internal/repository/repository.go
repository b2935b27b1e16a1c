package repository

import (
	"context"

	"library-of-things-backend/internal/domain"
)

// Store bundles the repositories over one database. ExecTx yields a
// Store whose repositories share a single transaction, so a service can
// compose read-validate-write sequences atomically.
type Store interface {
	Users() UserRepository
	Categories() CategoryRepository
	Items() ItemRepository
	Rentals() RentalRepository
	Reviews() ReviewRepository

	ExecTx(ctx context.Context, fn func(Store) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetProfile(ctx context.Context, id int32) (*domain.UserProfile, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	// Update writes title, description and daily rate. Availability is
	// excluded on purpose; only SetAvailability touches that column.
	Update(ctx context.Context, item *domain.Item) error
	SetAvailability(ctx context.Context, itemID int32, available bool) error
	List(ctx context.Context, categorySlug string, availableOnly bool, page, pageSize int32) ([]domain.Item, int32, error)
	Nearby(ctx context.Context, lat, lon, radiusKm float64, categorySlug string) ([]domain.NearbyItem, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID joins the item row so OwnerID and the display fields are
	// populated on every read.
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) (string, error)
	// CountOverlapping counts rentals for the item in a blocking status
	// whose [start, end) range intersects the given half-open range.
	// excludeID skips one rental (the one being approved); pass 0 to
	// count against all.
	CountOverlapping(ctx context.Context, itemID int32, startDate, endDate string, excludeID int32) (int32, error)
	ListByItemOwner(ctx context.Context, ownerID int32, status string) ([]domain.Rental, error)
	ListByBorrower(ctx context.Context, borrowerID int32, status string) ([]domain.Rental, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ExistsForRental(ctx context.Context, rentalID, reviewerID int32) (bool, error)
	ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error)
	ListByReviewer(ctx context.Context, reviewerID int32) ([]domain.Review, error)
}
