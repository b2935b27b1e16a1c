package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (item_id, borrower_id, start_date, end_date, status, total_price)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		rt.ItemID, rt.BorrowerID, rt.StartDate, rt.EndDate, rt.Status, rt.TotalPrice).
		Scan(&rt.ID, &createdAt)
	if err != nil {
		return err
	}
	rt.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT r.id, r.item_id, r.borrower_id, r.start_date, r.end_date, r.status, r.total_price, r.created_at,
	                 i.owner_id, i.title, i.description,
	                 bu.first_name || ' ' || bu.last_name AS borrower_name,
	                 ou.first_name || ' ' || ou.last_name AS owner_name
	          FROM rentals r
	          JOIN items i ON i.id = r.item_id
	          JOIN users bu ON bu.id = r.borrower_id
	          JOIN users ou ON ou.id = i.owner_id
	          WHERE r.id = $1`

	rt := &domain.Rental{}
	var startDate, endDate, createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.ItemID, &rt.BorrowerID, &startDate, &endDate, &rt.Status, &rt.TotalPrice, &createdAt,
		&rt.OwnerID, &rt.ItemTitle, &rt.ItemDescription, &rt.BorrowerName, &rt.OwnerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rt.StartDate = startDate.Format("2006-01-02")
	rt.EndDate = endDate.Format("2006-01-02")
	rt.CreatedAt = createdAt.Format(time.RFC3339)
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) (string, error) {
	query := `UPDATE rentals SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return updatedAt.Format(time.RFC3339), nil
}

// CountOverlapping uses the half-open interval test: a rental ending on
// day N and one starting on day N do not conflict.
func (r *rentalRepository) CountOverlapping(ctx context.Context, itemID int32, startDate, endDate string, excludeID int32) (int32, error) {
	query := `SELECT count(*) FROM rentals
	          WHERE item_id = $1
	            AND status IN ('Approved', 'Out for Rent')
	            AND start_date < $2
	            AND end_date > $3`
	args := []interface{}{itemID, endDate, startDate}
	if excludeID != 0 {
		query += " AND id <> $4"
		args = append(args, excludeID)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) ListByItemOwner(ctx context.Context, ownerID int32, status string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.item_id, r.borrower_id, r.start_date, r.end_date, r.status, r.total_price, r.created_at,
	                 i.owner_id, i.title,
	                 bu.first_name || ' ' || bu.last_name AS borrower_name,
	                 ROUND(AVG(rv.rating)::numeric, 2) AS borrower_rating
	          FROM rentals r
	          JOIN items i ON i.id = r.item_id
	          JOIN users bu ON bu.id = r.borrower_id
	          LEFT JOIN reviews rv ON rv.reviewer_id = r.borrower_id
	          WHERE i.owner_id = $1`
	args := []interface{}{ownerID}
	if status != "" {
		query += " AND r.status = $2"
		args = append(args, status)
	}
	query += " GROUP BY r.id, i.owner_id, i.title, bu.id ORDER BY r.created_at DESC"

	return r.list(ctx, query, args, true)
}

func (r *rentalRepository) ListByBorrower(ctx context.Context, borrowerID int32, status string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.item_id, r.borrower_id, r.start_date, r.end_date, r.status, r.total_price, r.created_at,
	                 i.owner_id, i.title,
	                 ou.first_name || ' ' || ou.last_name AS owner_name
	          FROM rentals r
	          JOIN items i ON i.id = r.item_id
	          JOIN users ou ON ou.id = i.owner_id
	          WHERE r.borrower_id = $1`
	args := []interface{}{borrowerID}
	if status != "" {
		query += " AND r.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY r.created_at DESC"

	return r.list(ctx, query, args, false)
}

func (r *rentalRepository) list(ctx context.Context, query string, args []interface{}, incoming bool) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var startDate, endDate, createdAt time.Time
		dest := []interface{}{
			&rt.ID, &rt.ItemID, &rt.BorrowerID, &startDate, &endDate, &rt.Status,
			&rt.TotalPrice, &createdAt, &rt.OwnerID, &rt.ItemTitle,
		}
		if incoming {
			var rating sql.NullFloat64
			dest = append(dest, &rt.BorrowerName, &rating)
			if err := rows.Scan(dest...); err != nil {
				return nil, err
			}
			if rating.Valid {
				rt.BorrowerRating = &rating.Float64
			}
		} else {
			dest = append(dest, &rt.OwnerName)
			if err := rows.Scan(dest...); err != nil {
				return nil, err
			}
		}
		rt.StartDate = startDate.Format("2006-01-02")
		rt.EndDate = endDate.Format("2006-01-02")
		rt.CreatedAt = createdAt.Format(time.RFC3339)
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
