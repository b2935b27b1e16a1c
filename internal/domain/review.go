package domain

type Review struct {
	ID         int32   `json:"id"`
	RentalID   int32   `json:"rental_id"`
	ReviewerID int32   `json:"reviewer_id"`
	Rating     int32   `json:"rating"`
	Comment    *string `json:"comment"`
	CreatedAt  string  `json:"created_at"`

	ReviewerName string `json:"reviewer_name,omitempty"`
}
