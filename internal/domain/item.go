package domain

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Item struct {
	ID          int32   `json:"id"`
	OwnerID     int32   `json:"owner_id"`
	Owner       *User   `json:"owner,omitempty"` // Populated when fetching item details
	CategoryID  int32   `json:"category_id"`
	Category    string  `json:"category,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DailyRate   float64 `json:"daily_rate"`
	// IsAvailable is owned by the rental state machine: the Approved
	// transition clears it and the Completed transition sets it. Item
	// updates never touch this flag.
	IsAvailable bool     `json:"is_available"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	// AverageRating aggregates reviews left on this item's rentals;
	// nil when the item has never been reviewed.
	AverageRating *float64 `json:"average_rating,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// NearbyItem is an Item enriched with the search projection returned by
// the PostGIS proximity query.
type NearbyItem struct {
	Item
	OwnerName  string  `json:"owner_name"`
	DistanceKm float64 `json:"distance"`
}
