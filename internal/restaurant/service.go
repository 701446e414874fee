package restaurant

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"foodcourt/internal/cache"
	"foodcourt/internal/domain"
)

type restaurantService struct {
	repo   Repository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewService(repo Repository, c *cache.Cache, logger *zap.Logger) Service {
	return &restaurantService{repo: repo, cache: c, logger: logger}
}

func (s *restaurantService) Create(ctx context.Context, req RestaurantRequest) (*RestaurantDTO, error) {
	rest := &domain.Restaurant{
		RestaurantID: uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
	}

	if err := s.repo.Create(ctx, rest); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant created", zap.String("restaurantId", rest.RestaurantID))
	return toRestaurantDTO(rest), nil
}

func (s *restaurantService) GetByID(ctx context.Context, id string) (*RestaurantDTO, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceRestaurants, id, func() (*RestaurantDTO, error) {
		rest, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return toRestaurantDTO(rest), nil
	})
}

func (s *restaurantService) List(ctx context.Context) ([]RestaurantDTO, error) {
	restaurants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]RestaurantDTO, 0, len(restaurants))
	for i := range restaurants {
		dtos = append(dtos, *toRestaurantDTO(&restaurants[i]))
	}
	return dtos, nil
}

func (s *restaurantService) Update(ctx context.Context, id string, req RestaurantRequest) (*RestaurantDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.Phone = req.Phone

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.NamespaceRestaurants, id)
	return toRestaurantDTO(existing), nil
}

func (s *restaurantService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(cache.NamespaceRestaurants, id)
	return nil
}
