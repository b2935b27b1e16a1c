package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

type itemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (owner_id, category_id, title, description, daily_rate, location)
	          VALUES ($1, $2, $3, $4, $5, ST_MakePoint($6, $7)::geography)
	          RETURNING id, is_available, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.CategoryID, item.Title, item.Description, item.DailyRate,
		item.Longitude, item.Latitude).
		Scan(&item.ID, &item.IsAvailable, &createdAt)
	if err != nil {
		return err
	}
	item.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	query := `SELECT i.id, i.owner_id, i.category_id, i.title, i.description, i.daily_rate, i.is_available,
	                 ST_Y(i.location::geometry) AS latitude,
	                 ST_X(i.location::geometry) AS longitude,
	                 ROUND(AVG(rv.rating)::numeric, 2) AS average_rating,
	                 i.created_at,
	                 c.name,
	                 u.id, u.first_name, u.last_name, u.email
	          FROM items i
	          JOIN categories c ON c.id = i.category_id
	          JOIN users u ON u.id = i.owner_id
	          LEFT JOIN rentals rent ON rent.item_id = i.id
	          LEFT JOIN reviews rv ON rv.rental_id = rent.id
	          WHERE i.id = $1
	          GROUP BY i.id, c.name, u.id`

	item := &domain.Item{Owner: &domain.User{}}
	var createdAt time.Time
	var lat, lon, avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.CategoryID, &item.Title, &item.Description,
		&item.DailyRate, &item.IsAvailable, &lat, &lon, &avg, &createdAt, &item.Category,
		&item.Owner.ID, &item.Owner.FirstName, &item.Owner.LastName, &item.Owner.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	item.CreatedAt = createdAt.Format(time.RFC3339)
	if lat.Valid {
		item.Latitude = &lat.Float64
	}
	if lon.Valid {
		item.Longitude = &lon.Float64
	}
	if avg.Valid {
		item.AverageRating = &avg.Float64
	}
	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	// is_available is deliberately absent: that column belongs to the
	// rental state machine.
	query := `UPDATE items SET title = $1, description = $2, daily_rate = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, item.Title, item.Description, item.DailyRate, item.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepository) SetAvailability(ctx context.Context, itemID int32, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET is_available = $1 WHERE id = $2`, available, itemID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context, categorySlug string, availableOnly bool, page, pageSize int32) ([]domain.Item, int32, error) {
	offset := (page - 1) * pageSize

	where := " WHERE 1=1"
	var args []interface{}
	argIdx := 1
	if categorySlug != "" {
		where += fmt.Sprintf(" AND c.slug = $%d", argIdx)
		args = append(args, categorySlug)
		argIdx++
	}
	if availableOnly {
		where += " AND i.is_available = true"
	}

	var count int32
	countQuery := `SELECT count(*) FROM items i JOIN categories c ON c.id = i.category_id` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT i.id, i.owner_id, i.category_id, i.title, i.description, i.daily_rate, i.is_available,
	                 ROUND(AVG(rv.rating)::numeric, 2) AS average_rating,
	                 i.created_at, c.name
	          FROM items i
	          JOIN categories c ON c.id = i.category_id
	          LEFT JOIN rentals rent ON rent.item_id = i.id
	          LEFT JOIN reviews rv ON rv.rental_id = rent.id` + where
	query += fmt.Sprintf(" GROUP BY i.id, c.name ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		var createdAt time.Time
		var avg sql.NullFloat64
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.CategoryID, &item.Title, &item.Description,
			&item.DailyRate, &item.IsAvailable, &avg, &createdAt, &item.Category); err != nil {
			return nil, 0, err
		}
		if avg.Valid {
			item.AverageRating = &avg.Float64
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		items = append(items, item)
	}
	return items, count, rows.Err()
}

// Nearby runs the PostGIS proximity search: available items with a
// location inside the radius, closest first, with the average rating of
// reviews left on their rentals.
func (r *itemRepository) Nearby(ctx context.Context, lat, lon, radiusKm float64, categorySlug string) ([]domain.NearbyItem, error) {
	query := `SELECT
	            i.id, i.owner_id, i.category_id, i.title, i.description, i.daily_rate, i.is_available,
	            c.name AS category,
	            u.first_name || ' ' || u.last_name AS owner_name,
	            ST_Y(i.location::geometry) AS latitude,
	            ST_X(i.location::geometry) AS longitude,
	            ST_Distance(i.location::geography, ST_MakePoint($1, $2)::geography) / 1000.0 AS distance,
	            ROUND(AVG(rv.rating)::numeric, 2) AS average_rating
	          FROM items i
	          JOIN categories c ON c.id = i.category_id
	          JOIN users u ON u.id = i.owner_id
	          LEFT JOIN rentals rent ON rent.item_id = i.id
	          LEFT JOIN reviews rv ON rv.rental_id = rent.id
	          WHERE i.is_available = true
	            AND i.location IS NOT NULL
	            AND ST_DWithin(i.location::geography, ST_MakePoint($1, $2)::geography, $3)`

	args := []interface{}{lon, lat, radiusKm * 1000}
	if categorySlug != "" {
		query += " AND c.slug = $4"
		args = append(args, categorySlug)
	}
	query += " GROUP BY i.id, c.name, u.id ORDER BY distance ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NearbyItem
	for rows.Next() {
		var ni domain.NearbyItem
		var lat, lon float64
		var avg sql.NullFloat64
		if err := rows.Scan(&ni.ID, &ni.OwnerID, &ni.CategoryID, &ni.Title, &ni.Description,
			&ni.DailyRate, &ni.IsAvailable, &ni.Category, &ni.OwnerName, &lat, &lon,
			&ni.DistanceKm, &avg); err != nil {
			return nil, err
		}
		ni.Latitude = &lat
		ni.Longitude = &lon
		if avg.Valid {
			ni.AverageRating = &avg.Float64
		}
		items = append(items, ni)
	}
	return items, rows.Err()
}
