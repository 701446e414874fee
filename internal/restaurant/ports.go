package restaurant

import (
	"context"

	"foodcourt/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, req RestaurantRequest) (*RestaurantDTO, error)
	GetByID(ctx context.Context, id string) (*RestaurantDTO, error)
	List(ctx context.Context) ([]RestaurantDTO, error)
	Update(ctx context.Context, id string, req RestaurantRequest) (*RestaurantDTO, error)
	Delete(ctx context.Context, id string) error
}
