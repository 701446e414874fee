package order

import (
	"context"
	"time"

	"foodcourt/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	// FindStalled returns orders in the given status created at or before
	// the cutoff, oldest first.
	FindStalled(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
}

// MenuReader resolves menu items at placement time so line prices can be
// snapshotted into the order.
type MenuReader interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type RestaurantReader interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier is the fire-and-forget email hook. The order service never
// waits on or observes delivery.
type Notifier interface {
	Notify(to, subject, body string)
}

type Service interface {
	Place(ctx context.Context, userID string, req PlaceOrderRequest) (*OrderView, error)
	GetByID(ctx context.Context, id string) (*OrderView, error)
	ListByUser(ctx context.Context, userID string) ([]OrderView, error)
	ListAll(ctx context.Context) ([]OrderView, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*OrderView, error)
	Cancel(ctx context.Context, id string) (*OrderView, error)
}
