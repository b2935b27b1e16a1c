package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password_hash, is_active)
	          VALUES ($1, $2, $3, $4, true) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash).
		Scan(&u.ID, &createdAt)
	if err != nil {
		return err
	}
	u.IsActive = true
	u.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, is_active, created_at
	          FROM users WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, is_active, created_at
	          FROM users WHERE email = $1 AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdAt time.Time
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsActive, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

// GetProfile aggregates the rating the user has received on reviews of
// rentals of their items, plus listing and completed-rental counts.
func (r *userRepository) GetProfile(ctx context.Context, id int32) (*domain.UserProfile, error) {
	query := `SELECT
	            u.id, u.first_name, u.last_name, u.email, u.created_at,
	            ROUND(AVG(rv.rating)::numeric, 2) AS average_rating,
	            COUNT(DISTINCT i.id) AS items_listed,
	            COUNT(DISTINCT CASE WHEN rent.status = 'Completed' THEN rent.id END) AS rentals_completed
	          FROM users u
	          LEFT JOIN items i ON i.owner_id = u.id
	          LEFT JOIN rentals rent ON rent.item_id = i.id
	          LEFT JOIN reviews rv ON rv.rental_id = rent.id
	          WHERE u.id = $1 AND u.is_active = true AND u.deleted_at IS NULL
	          GROUP BY u.id`

	p := &domain.UserProfile{}
	var createdAt time.Time
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &createdAt, &avg, &p.ItemsListed, &p.RentalsCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt = createdAt.Format(time.RFC3339)
	if avg.Valid {
		p.AverageRating = &avg.Float64
	}
	return p, nil
}
