package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"library-of-things-backend/internal/domain"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	rental := &domain.Rental{
		ItemID:     5,
		BorrowerID: 2,
		StartDate:  "2026-09-12",
		EndDate:    "2026-09-20",
		Status:     domain.RentalStatusRequested,
		TotalPrice: 80.00,
	}

	mock.ExpectQuery("INSERT INTO rentals").
		WithArgs(rental.ItemID, rental.BorrowerID, rental.StartDate, rental.EndDate, rental.Status, rental.TotalPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))

	err = repo.Create(ctx, rental)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), rental.ID)
	assert.NotEmpty(t, rental.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start, _ := time.Parse("2006-01-02", "2026-09-12")
		end, _ := time.Parse("2006-01-02", "2026-09-20")
		rows := sqlmock.NewRows([]string{
			"id", "item_id", "borrower_id", "start_date", "end_date", "status", "total_price", "created_at",
			"owner_id", "title", "description", "borrower_name", "owner_name",
		}).AddRow(42, 5, 2, start, end, "Requested", 80.00, time.Now(), 1, "Cordless drill", nil, "Bob Borrower", "Olive Owner")

		mock.ExpectQuery("SELECT (.+) FROM rentals r").
			WithArgs(int32(42)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.OwnerID)
		assert.Equal(t, "2026-09-12", rental.StartDate)
		assert.Equal(t, "2026-09-20", rental.EndDate)
		assert.Equal(t, domain.RentalStatusRequested, rental.Status)
		assert.Equal(t, "Bob Borrower", rental.BorrowerName)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals r").
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("UPDATE rentals SET status").
		WithArgs(domain.RentalStatusApproved, int32(42)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	updatedAt, err := repo.UpdateStatus(ctx, 42, domain.RentalStatusApproved)
	assert.NoError(t, err)
	assert.NotEmpty(t, updatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_CountOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Without exclusion", func(t *testing.T) {
		// Half-open test: args are (item, requested end, requested start).
		mock.ExpectQuery("SELECT count").
			WithArgs(int32(5), "2026-09-20", "2026-09-12").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountOverlapping(ctx, 5, "2026-09-12", "2026-09-20", 0)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), count)
	})

	t.Run("Excluding the rental being approved", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(int32(5), "2026-09-20", "2026-09-12", int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountOverlapping(ctx, 5, "2026-09-12", "2026-09-20", 42)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})
}

// Touching ranges must not conflict: a rental ending on 2025-06-15 and
// a request starting on 2025-06-15 share no day. The equal-query
// matcher pins the strict < and > operators, so a slide to <= or >=
// fails this test.
func TestRentalRepository_CountOverlapping_TouchingBoundary(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	query := `SELECT count(*) FROM rentals
	          WHERE item_id = $1
	            AND status IN ('Approved', 'Out for Rent')
	            AND start_date < $2
	            AND end_date > $3`

	// Existing Approved rental occupies [2025-06-10, 2025-06-15); the
	// request asks for [2025-06-15, 2025-06-20). start_date < '2025-06-20'
	// holds but end_date > '2025-06-15' does not, so the row is not
	// counted and the booking goes through.
	mock.ExpectQuery(query).
		WithArgs(int32(5), "2025-06-20", "2025-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountOverlapping(ctx, 5, "2025-06-15", "2025-06-20", 0)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_ListByBorrower(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	start, _ := time.Parse("2006-01-02", "2026-09-12")
	end, _ := time.Parse("2006-01-02", "2026-09-20")
	rows := sqlmock.NewRows([]string{
		"id", "item_id", "borrower_id", "start_date", "end_date", "status", "total_price", "created_at",
		"owner_id", "title", "owner_name",
	}).AddRow(42, 5, 2, start, end, "Approved", 80.00, time.Now(), 1, "Cordless drill", "Olive Owner")

	mock.ExpectQuery("SELECT (.+) FROM rentals r").
		WithArgs(int32(2), "Approved").
		WillReturnRows(rows)

	rentals, err := repo.ListByBorrower(ctx, 2, "Approved")
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.Equal(t, "Olive Owner", rentals[0].OwnerName)
}
