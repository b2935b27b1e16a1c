package domain

type RentalStatus string

const (
	RentalStatusRequested  RentalStatus = "Requested"
	RentalStatusApproved   RentalStatus = "Approved"
	RentalStatusRejected   RentalStatus = "Rejected"
	RentalStatusOutForRent RentalStatus = "Out for Rent"
	RentalStatusOverdue    RentalStatus = "Overdue"
	RentalStatusReturned   RentalStatus = "Returned"
	RentalStatusCompleted  RentalStatus = "Completed"
)

// ValidRentalStatus reports whether s is one of the seven defined
// status values.
func ValidRentalStatus(s string) bool {
	switch RentalStatus(s) {
	case RentalStatusRequested, RentalStatusApproved, RentalStatusRejected,
		RentalStatusOutForRent, RentalStatusOverdue, RentalStatusReturned,
		RentalStatusCompleted:
		return true
	}
	return false
}

// BlockingStatuses are the statuses that reserve an item's date range
// against new bookings. Requested rentals do not block: multiple
// competing requests may exist and the owner's approval is the actual
// reservation act.
var BlockingStatuses = []RentalStatus{RentalStatusApproved, RentalStatusOutForRent}

type ActorRole string

const (
	RoleOwner    ActorRole = "owner"
	RoleBorrower ActorRole = "borrower"
)

// Transition is one legal edge of the rental lifecycle. Encoding the
// table as (from, to, actor) triples lets the edge-legality check and
// the authorization check share a single lookup.
type Transition struct {
	From  RentalStatus
	To    RentalStatus
	Actor ActorRole
}

var transitions = []Transition{
	{RentalStatusRequested, RentalStatusApproved, RoleOwner},
	{RentalStatusRequested, RentalStatusRejected, RoleOwner},
	{RentalStatusApproved, RentalStatusOutForRent, RoleOwner},
	{RentalStatusOutForRent, RentalStatusReturned, RoleBorrower},
	{RentalStatusOutForRent, RentalStatusOverdue, RoleOwner},
	{RentalStatusOverdue, RentalStatusReturned, RoleBorrower},
	{RentalStatusReturned, RentalStatusCompleted, RoleOwner},
}

// FindTransition looks up the transition table. The second return value
// is false when (from, to) is not a legal edge.
func FindTransition(from, to RentalStatus) (Transition, bool) {
	for _, t := range transitions {
		if t.From == from && t.To == to {
			return t, true
		}
	}
	return Transition{}, false
}

type Rental struct {
	ID         int32  `json:"id"`
	ItemID     int32  `json:"item_id"`
	BorrowerID int32  `json:"borrower_id"`
	// OwnerID is denormalized from the item row on every read; the
	// rentals table itself does not store it.
	OwnerID    int32        `json:"owner_id"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	Status     RentalStatus `json:"status"`
	TotalPrice float64      `json:"total_price"`
	CreatedAt  string       `json:"created_at"`
	UpdatedAt  string       `json:"updated_at,omitempty"`

	// Display projections, populated on detail and list reads.
	ItemTitle       string   `json:"item_title,omitempty"`
	ItemDescription *string  `json:"item_description,omitempty"`
	BorrowerName    string   `json:"borrower_name,omitempty"`
	OwnerName       string   `json:"owner_name,omitempty"`
	BorrowerRating  *float64 `json:"borrower_rating,omitempty"`
}

// RoleOf derives the caller's role from the stored party ids. The
// second return value is false when the caller is neither party.
func (r *Rental) RoleOf(actorID int32) (ActorRole, bool) {
	switch actorID {
	case r.OwnerID:
		return RoleOwner, true
	case r.BorrowerID:
		return RoleBorrower, true
	}
	return "", false
}

// Advance validates a requested transition against the table and the
// caller's role. It is a pure check: the caller persists the new status
// and any availability side effect itself, atomically.
func (r *Rental) Advance(actorID int32, to RentalStatus) (Transition, error) {
	role, ok := r.RoleOf(actorID)
	if !ok {
		return Transition{}, ErrForbidden
	}
	t, ok := FindTransition(r.Status, to)
	if !ok {
		return Transition{}, &InvalidTransitionError{From: r.Status, To: to}
	}
	if t.Actor != role {
		return Transition{}, Forbiddenf("Only the %s can perform this transition", t.Actor)
	}
	return t, nil
}
