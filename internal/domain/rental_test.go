package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []RentalStatus{
	RentalStatusRequested,
	RentalStatusApproved,
	RentalStatusRejected,
	RentalStatusOutForRent,
	RentalStatusOverdue,
	RentalStatusReturned,
	RentalStatusCompleted,
}

func TestValidRentalStatus(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, ValidRentalStatus(string(s)), string(s))
	}
	assert.False(t, ValidRentalStatus("Pending"))
	assert.False(t, ValidRentalStatus("approved"))
	assert.False(t, ValidRentalStatus(""))
}

func TestFindTransition_Table(t *testing.T) {
	legal := map[[2]RentalStatus]ActorRole{
		{RentalStatusRequested, RentalStatusApproved}:  RoleOwner,
		{RentalStatusRequested, RentalStatusRejected}:  RoleOwner,
		{RentalStatusApproved, RentalStatusOutForRent}: RoleOwner,
		{RentalStatusOutForRent, RentalStatusReturned}: RoleBorrower,
		{RentalStatusOutForRent, RentalStatusOverdue}:  RoleOwner,
		{RentalStatusOverdue, RentalStatusReturned}:    RoleBorrower,
		{RentalStatusReturned, RentalStatusCompleted}:  RoleOwner,
	}

	// Every (from, to) pair, including self-loops, must be legal exactly
	// when the table says so.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			tr, ok := FindTransition(from, to)
			role, want := legal[[2]RentalStatus{from, to}]
			assert.Equal(t, want, ok, "%s -> %s", from, to)
			if want {
				assert.Equal(t, role, tr.Actor, "%s -> %s", from, to)
			}
		}
	}
}

func TestRental_RoleOf(t *testing.T) {
	r := &Rental{OwnerID: 10, BorrowerID: 20}

	role, ok := r.RoleOf(10)
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	role, ok = r.RoleOf(20)
	assert.True(t, ok)
	assert.Equal(t, RoleBorrower, role)

	_, ok = r.RoleOf(99)
	assert.False(t, ok)
}

func TestRental_Advance(t *testing.T) {
	base := Rental{OwnerID: 10, BorrowerID: 20, Status: RentalStatusRequested}

	t.Run("owner approves a request", func(t *testing.T) {
		r := base
		tr, err := r.Advance(10, RentalStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, RoleOwner, tr.Actor)
	})

	t.Run("borrower cannot approve", func(t *testing.T) {
		r := base
		_, err := r.Advance(20, RentalStatusApproved)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, "Only the owner can perform this transition", err.Error())
	})

	t.Run("owner cannot mark returned", func(t *testing.T) {
		r := base
		r.Status = RentalStatusOutForRent
		_, err := r.Advance(10, RentalStatusReturned)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, "Only the borrower can perform this transition", err.Error())
	})

	t.Run("stranger is rejected before the edge check", func(t *testing.T) {
		r := base
		_, err := r.Advance(99, RentalStatusApproved)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("illegal edge", func(t *testing.T) {
		r := base
		r.Status = RentalStatusCompleted
		_, err := r.Advance(10, RentalStatusRequested)
		var invalid *InvalidTransitionError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, "cannot transition from Completed to Requested", err.Error())
	})

	t.Run("rejecting an approved rental is not an edge", func(t *testing.T) {
		r := base
		r.Status = RentalStatusApproved
		_, err := r.Advance(10, RentalStatusRejected)
		var invalid *InvalidTransitionError
		assert.True(t, errors.As(err, &invalid))
	})

	t.Run("borrower returns an overdue rental", func(t *testing.T) {
		r := base
		r.Status = RentalStatusOverdue
		tr, err := r.Advance(20, RentalStatusReturned)
		assert.NoError(t, err)
		assert.Equal(t, RoleBorrower, tr.Actor)
	})
}
