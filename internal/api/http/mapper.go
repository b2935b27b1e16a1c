package http

import (
	"library-of-things-backend/internal/domain"
)

// Response views keep the wire format of the public API stable and
// camelCased, independent of the domain structs.

type userView struct {
	ID        int32  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
}

func mapUser(u *domain.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

type profileView struct {
	userView
	AverageRating    *float64 `json:"averageRating"`
	ItemsListed      int32    `json:"itemsListed"`
	RentalsCompleted int32    `json:"rentalsCompleted"`
}

func mapProfile(p *domain.UserProfile) profileView {
	return profileView{
		userView:         mapUser(&p.User),
		AverageRating:    p.AverageRating,
		ItemsListed:      p.ItemsListed,
		RentalsCompleted: p.RentalsCompleted,
	}
}

type itemView struct {
	ID            int32    `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	DailyRate     float64  `json:"dailyRate"`
	CategoryID    int32    `json:"categoryId"`
	Category      string   `json:"category,omitempty"`
	OwnerID       int32    `json:"ownerId"`
	OwnerName     string   `json:"ownerName,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsAvailable   bool     `json:"isAvailable"`
	AverageRating *float64 `json:"averageRating"`
	CreatedAt     string   `json:"createdAt"`
}

func mapItem(i *domain.Item) itemView {
	v := itemView{
		ID:            i.ID,
		Title:         i.Title,
		Description:   i.Description,
		DailyRate:     i.DailyRate,
		CategoryID:    i.CategoryID,
		Category:      i.Category,
		OwnerID:       i.OwnerID,
		Latitude:      i.Latitude,
		Longitude:     i.Longitude,
		IsAvailable:   i.IsAvailable,
		AverageRating: i.AverageRating,
		CreatedAt:     i.CreatedAt,
	}
	if i.Owner != nil {
		v.OwnerName = i.Owner.Name()
	}
	return v
}

type nearbyItemView struct {
	itemView
	Distance float64 `json:"distance"`
}

func mapNearbyItem(n *domain.NearbyItem) nearbyItemView {
	v := mapItem(&n.Item)
	v.OwnerName = n.OwnerName
	return nearbyItemView{
		itemView: v,
		// Distance is reported to one decimal, as the search UI expects.
		Distance: float64(int(n.DistanceKm*10+0.5)) / 10,
	}
}

type categoryView struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type rentalView struct {
	ID              int32    `json:"id"`
	ItemID          int32    `json:"itemId"`
	ItemTitle       string   `json:"itemTitle,omitempty"`
	ItemDescription *string  `json:"itemDescription,omitempty"`
	BorrowerID      int32    `json:"borrowerId"`
	BorrowerName    string   `json:"borrowerName,omitempty"`
	BorrowerRating  *float64 `json:"borrowerRating,omitempty"`
	OwnerID         int32    `json:"ownerId"`
	OwnerName       string   `json:"ownerName,omitempty"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Status          string   `json:"status"`
	TotalPrice      float64  `json:"totalPrice"`
	CreatedAt       string   `json:"createdAt"`
}

func mapRental(r *domain.Rental) rentalView {
	return rentalView{
		ID:              r.ID,
		ItemID:          r.ItemID,
		ItemTitle:       r.ItemTitle,
		ItemDescription: r.ItemDescription,
		BorrowerID:      r.BorrowerID,
		BorrowerName:    r.BorrowerName,
		BorrowerRating:  r.BorrowerRating,
		OwnerID:         r.OwnerID,
		OwnerName:       r.OwnerName,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Status:          string(r.Status),
		TotalPrice:      r.TotalPrice,
		CreatedAt:       r.CreatedAt,
	}
}

type rentalStatusView struct {
	ID        int32  `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

type reviewView struct {
	ID           int32   `json:"id"`
	RentalID     int32   `json:"rentalId"`
	ReviewerID   int32   `json:"reviewerId"`
	ReviewerName string  `json:"reviewerName,omitempty"`
	Rating       int32   `json:"rating"`
	Comment      *string `json:"comment"`
	CreatedAt    string  `json:"createdAt"`
}

func mapReview(rv *domain.Review) reviewView {
	return reviewView{
		ID:           rv.ID,
		RentalID:     rv.RentalID,
		ReviewerID:   rv.ReviewerID,
		ReviewerName: rv.ReviewerName,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		CreatedAt:    rv.CreatedAt,
	}
}
