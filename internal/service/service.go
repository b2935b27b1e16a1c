package service

import (
	"context"
	"time"

	"library-of-things-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.UserProfile, error)
}

// CreateItemInput carries the already-validated request payload for a
// new listing.
type CreateItemInput struct {
	Title       string
	Description *string
	DailyRate   float64
	CategoryID  int32
	Latitude    float64
	Longitude   float64
}

// UpdateItemInput uses nil to mean "leave unchanged". Availability is
// absent: the rental state machine owns that flag.
type UpdateItemInput struct {
	Title       *string
	Description *string
	DailyRate   *float64
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int32, in CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	UpdateItem(ctx context.Context, actorID, itemID int32, in UpdateItemInput) (*domain.Item, error)
	ListItems(ctx context.Context, categorySlug string, availableOnly bool, page, pageSize int32) ([]domain.Item, int32, error)
	NearbyItems(ctx context.Context, lat, lon, radiusKm float64, categorySlug string) ([]domain.NearbyItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, borrowerID, itemID int32, startDate, endDate string) (*domain.Rental, error)
	UpdateRentalStatus(ctx context.Context, actorID, rentalID int32, requestedStatus string) (*domain.Rental, error)
	GetRental(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	ListIncoming(ctx context.Context, ownerID int32, status string) ([]domain.Rental, error)
	ListOutgoing(ctx context.Context, borrowerID int32, status string) ([]domain.Rental, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID, rentalID, rating int32, comment *string) (*domain.Review, error)
	ListItemReviews(ctx context.Context, itemID int32) ([]domain.Review, error)
	ListUserReviews(ctx context.Context, userID int32) ([]domain.Review, error)
}
