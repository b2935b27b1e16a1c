package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

// mockStore satisfies repository.Store. ExecTx just runs the callback
// against the same mocks, which is exactly what the services see with a
// real transaction.
type mockStore struct {
	users      *MockUserRepo
	categories *MockCategoryRepo
	items      *MockItemRepo
	rentals    *MockRentalRepo
	reviews    *MockReviewRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:      new(MockUserRepo),
		categories: new(MockCategoryRepo),
		items:      new(MockItemRepo),
		rentals:    new(MockRentalRepo),
		reviews:    new(MockReviewRepo),
	}
}

func (s *mockStore) Users() repository.UserRepository          { return s.users }
func (s *mockStore) Categories() repository.CategoryRepository { return s.categories }
func (s *mockStore) Items() repository.ItemRepository          { return s.items }
func (s *mockStore) Rentals() repository.RentalRepository      { return s.rentals }
func (s *mockStore) Reviews() repository.ReviewRepository      { return s.reviews }

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetProfile(ctx context.Context, id int32) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) SetAvailability(ctx context.Context, itemID int32, available bool) error {
	args := m.Called(ctx, itemID, available)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context, categorySlug string, availableOnly bool, page, pageSize int32) ([]domain.Item, int32, error) {
	args := m.Called(ctx, categorySlug, availableOnly, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Get(1).(int32), args.Error(2)
}
func (m *MockItemRepo) Nearby(ctx context.Context, lat, lon, radiusKm float64, categorySlug string) ([]domain.NearbyItem, error) {
	args := m.Called(ctx, lat, lon, radiusKm, categorySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NearbyItem), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) (string, error) {
	args := m.Called(ctx, id, status)
	return args.String(0), args.Error(1)
}
func (m *MockRentalRepo) CountOverlapping(ctx context.Context, itemID int32, startDate, endDate string, excludeID int32) (int32, error) {
	args := m.Called(ctx, itemID, startDate, endDate, excludeID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRepo) ListByItemOwner(ctx context.Context, ownerID int32, status string) ([]domain.Rental, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByBorrower(ctx context.Context, borrowerID int32, status string) ([]domain.Rental, error) {
	args := m.Called(ctx, borrowerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ExistsForRental(ctx context.Context, rentalID, reviewerID int32) (bool, error) {
	args := m.Called(ctx, rentalID, reviewerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockReviewRepo) ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListByReviewer(ctx context.Context, reviewerID int32) ([]domain.Review, error) {
	args := m.Called(ctx, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
