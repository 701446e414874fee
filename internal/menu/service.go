package menu

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"foodcourt/internal/cache"
	"foodcourt/internal/domain"
)

type menuService struct {
	repo        Repository
	restaurants RestaurantReader
	cache       *cache.Cache
	logger      *zap.Logger
}

func NewService(repo Repository, restaurants RestaurantReader, c *cache.Cache, logger *zap.Logger) Service {
	return &menuService{
		repo:        repo,
		restaurants: restaurants,
		cache:       c,
		logger:      logger,
	}
}

func (s *menuService) Create(ctx context.Context, req MenuRequest) (*MenuDTO, error) {
	if _, err := s.restaurants.FindByID(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		MenuID:       uuid.New().String(),
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	// The per-restaurant list no longer reflects the store.
	s.cache.Invalidate(cache.NamespaceMenuLists, req.RestaurantID)

	s.logger.Info("menu item created",
		zap.String("menuId", item.MenuID),
		zap.String("restaurantId", item.RestaurantID),
	)
	return toMenuDTO(item), nil
}

func (s *menuService) GetByID(ctx context.Context, id string) (*MenuDTO, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceMenuItems, id, func() (*MenuDTO, error) {
		item, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return toMenuDTO(item), nil
	})
}

func (s *menuService) ListByRestaurant(ctx context.Context, restaurantID string) ([]MenuDTO, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceMenuLists, restaurantID, func() ([]MenuDTO, error) {
		if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
			return nil, err
		}

		items, err := s.repo.FindByRestaurant(ctx, restaurantID)
		if err != nil {
			return nil, err
		}

		dtos := make([]MenuDTO, 0, len(items))
		for i := range items {
			dtos = append(dtos, *toMenuDTO(&items[i]))
		}
		return dtos, nil
	})
}

func (s *menuService) Update(ctx context.Context, id string, req MenuRequest) (*MenuDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.restaurants.FindByID(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	oldRestaurant := existing.RestaurantID
	existing.RestaurantID = req.RestaurantID
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.NamespaceMenuItems, id)
	s.cache.Invalidate(cache.NamespaceMenuLists, oldRestaurant, req.RestaurantID)
	return toMenuDTO(existing), nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(cache.NamespaceMenuItems, id)
	s.cache.Invalidate(cache.NamespaceMenuLists, existing.RestaurantID)
	return nil
}
