package domain

type User struct {
	ID           int32   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	DeletedAt    *string `json:"deleted_at,omitempty"`
}

// Name returns the display name used in API responses.
func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

// UserProfile is the read model behind /users/me and /users/{id}/profile.
// The aggregates are computed by the store, not stored on the user row.
type UserProfile struct {
	User
	AverageRating    *float64 `json:"average_rating"`
	ItemsListed      int32    `json:"items_listed"`
	RentalsCompleted int32    `json:"rentals_completed"`
}
