package service

import (
	"context"
	"errors"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/repository"
)

type itemService struct {
	store repository.Store
}

func NewItemService(store repository.Store) ItemService {
	return &itemService{store: store}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int32, in CreateItemInput) (*domain.Item, error) {
	if len(in.Title) < 5 || len(in.Title) > 100 {
		return nil, domain.Validationf("Title must be between 5 and 100 characters")
	}
	if in.DailyRate <= 0 || in.DailyRate > 1000 {
		return nil, domain.Validationf("Daily rate must be positive and at most 1000")
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return nil, domain.Validationf("Invalid coordinates")
	}

	category, err := s.store.Categories().GetByID(ctx, in.CategoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Validationf("Invalid categoryId")
	}
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		OwnerID:     ownerID,
		CategoryID:  in.CategoryID,
		Category:    category.Name,
		Title:       in.Title,
		Description: in.Description,
		DailyRate:   in.DailyRate,
		Latitude:    &in.Latitude,
		Longitude:   &in.Longitude,
	}
	if err := s.store.Items().Create(ctx, item); err != nil {
		return nil, err
	}

	if owner, err := s.store.Users().GetByID(ctx, ownerID); err == nil {
		item.Owner = owner
	}

	logger.Info("Item listed", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.store.Items().GetByID(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, actorID, itemID int32, in UpdateItemInput) (*domain.Item, error) {
	item, err := s.store.Items().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, domain.Forbiddenf("You can only update your own items")
	}

	if in.Title != nil {
		if len(*in.Title) < 5 || len(*in.Title) > 100 {
			return nil, domain.Validationf("Title must be between 5 and 100 characters")
		}
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = in.Description
	}
	if in.DailyRate != nil {
		if *in.DailyRate <= 0 || *in.DailyRate > 1000 {
			return nil, domain.Validationf("Daily rate must be positive and at most 1000")
		}
		item.DailyRate = *in.DailyRate
	}

	if err := s.store.Items().Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, categorySlug string, availableOnly bool, page, pageSize int32) ([]domain.Item, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.store.Items().List(ctx, categorySlug, availableOnly, page, pageSize)
}

func (s *itemService) NearbyItems(ctx context.Context, lat, lon, radiusKm float64, categorySlug string) ([]domain.NearbyItem, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, domain.Validationf("Invalid coordinates")
	}
	if radiusKm <= 0 || radiusKm > 50 {
		return nil, domain.Validationf("Radius must be between 0 and 50 km")
	}
	return s.store.Items().Nearby(ctx, lat, lon, radiusKm, categorySlug)
}

func (s *itemService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories().List(ctx)
}
