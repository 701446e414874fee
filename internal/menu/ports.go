package menu

import (
	"context"

	"foodcourt/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}

// RestaurantReader verifies the foreign key on create/update.
type RestaurantReader interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type Service interface {
	Create(ctx context.Context, req MenuRequest) (*MenuDTO, error)
	GetByID(ctx context.Context, id string) (*MenuDTO, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]MenuDTO, error)
	Update(ctx context.Context, id string, req MenuRequest) (*MenuDTO, error)
	Delete(ctx context.Context, id string) error
}
