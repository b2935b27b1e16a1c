package postgres

import (
	"context"
	"time"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

type reviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (rental_id, reviewer_id, rating, comment)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, rv.RentalID, rv.ReviewerID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &createdAt)
	if err != nil {
		return err
	}
	rv.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

func (r *reviewRepository) ExistsForRental(ctx context.Context, rentalID, reviewerID int32) (bool, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM reviews WHERE rental_id = $1 AND reviewer_id = $2`,
		rentalID, reviewerID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error) {
	query := `SELECT rv.id, rv.rental_id, rv.reviewer_id, rv.rating, rv.comment, rv.created_at,
	                 u.first_name || ' ' || u.last_name AS reviewer_name
	          FROM reviews rv
	          JOIN rentals r ON r.id = rv.rental_id
	          JOIN users u ON u.id = rv.reviewer_id
	          WHERE r.item_id = $1
	          ORDER BY rv.created_at DESC`
	return r.list(ctx, query, itemID)
}

func (r *reviewRepository) ListByReviewer(ctx context.Context, reviewerID int32) ([]domain.Review, error) {
	query := `SELECT rv.id, rv.rental_id, rv.reviewer_id, rv.rating, rv.comment, rv.created_at,
	                 u.first_name || ' ' || u.last_name AS reviewer_name
	          FROM reviews rv
	          JOIN users u ON u.id = rv.reviewer_id
	          WHERE rv.reviewer_id = $1
	          ORDER BY rv.created_at DESC`
	return r.list(ctx, query, reviewerID)
}

func (r *reviewRepository) list(ctx context.Context, query string, arg int32) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		var createdAt time.Time
		if err := rows.Scan(&rv.ID, &rv.RentalID, &rv.ReviewerID, &rv.Rating, &rv.Comment,
			&createdAt, &rv.ReviewerName); err != nil {
			return nil, err
		}
		rv.CreatedAt = createdAt.Format(time.RFC3339)
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
