package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"library-of-things-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository
// works unchanged inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB

	users      repository.UserRepository
	categories repository.CategoryRepository
	items      repository.ItemRepository
	rentals    repository.RentalRepository
	reviews    repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:         db,
		users:      NewUserRepository(q),
		categories: NewCategoryRepository(q),
		items:      NewItemRepository(q),
		rentals:    NewRentalRepository(q),
		reviews:    NewReviewRepository(q),
	}
}

func (s *Store) Users() repository.UserRepository          { return s.users }
func (s *Store) Categories() repository.CategoryRepository { return s.categories }
func (s *Store) Items() repository.ItemRepository          { return s.items }
func (s *Store) Rentals() repository.RentalRepository      { return s.rentals }
func (s *Store) Reviews() repository.ReviewRepository      { return s.reviews }

// ExecTx runs fn against a store bound to a single transaction. Either
// every write inside fn commits or none does.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newStore(s.db, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
