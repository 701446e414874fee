package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"foodcourt/internal/cache"
	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
	"foodcourt/internal/metrics"
)

const (
	userListPrefix = "user:"
	allListKey     = "all"
)

type orderService struct {
	repo        Repository
	menus       MenuReader
	restaurants RestaurantReader
	users       UserReader
	cache       *cache.Cache
	notifier    Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(repo Repository, menus MenuReader, restaurants RestaurantReader, users UserReader,
	c *cache.Cache, notifier Notifier, logger *zap.Logger) Service {
	return &orderService{
		repo:        repo,
		menus:       menus,
		restaurants: restaurants,
		users:       users,
		cache:       c,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *orderService) Place(ctx context.Context, userID string, req PlaceOrderRequest) (*OrderView, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "items", Message: "order must contain at least one item"})
	}
	for i, line := range req.Items {
		if line.Quantity < 1 {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.ValidationDetail{
					Field:   fmt.Sprintf("items[%d].quantity", i),
					Message: "quantity must be at least 1",
				})
		}
	}

	restaurant, err := s.restaurants.FindByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Resolve every line against the live menu and snapshot its price.
	// Later menu edits never change what this order charges.
	lines := make([]domain.OrderLine, 0, len(req.Items))
	itemNames := make(map[string]string, len(req.Items))
	var total float64
	for _, line := range req.Items {
		item, err := s.menus.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.ValidationDetail{
					Field:   "items",
					Message: fmt.Sprintf("menu item %s does not belong to restaurant %s", line.MenuItemID, req.RestaurantID),
				})
		}

		lineTotal := item.Price * float64(line.Quantity)
		lines = append(lines, domain.OrderLine{
			MenuItemID: item.MenuID,
			Quantity:   line.Quantity,
			Price:      item.Price,
			TotalPrice: lineTotal,
		})
		itemNames[item.MenuID] = item.Name
		total += lineTotal
	}

	now := s.now().UTC()
	o := &domain.Order{
		OrderID:      uuid.New().String(),
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Items:        lines,
		TotalPrice:   total,
		Status:       domain.OrderStatusPlaced,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	view := toOrderView(o, user.Username, restaurant.Name, itemNames)
	s.cache.Put(cache.NamespaceOrders, o.OrderID, view)
	s.cache.Invalidate(cache.NamespaceOrderLists, userListPrefix+userID, allListKey)

	metrics.OrdersPlaced.Inc()
	s.logger.Info("order placed",
		zap.String("orderId", o.OrderID),
		zap.String("userId", userID),
		zap.String("restaurantId", req.RestaurantID),
		zap.Float64("totalPrice", total),
	)

	s.notifier.Notify(user.Email, "Order Update - "+o.OrderID,
		fmt.Sprintf("Hello %s,\n\nYour order %s has been placed. Order total: %.2f.\n",
			user.Username, o.OrderID, total))

	return view, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*OrderView, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceOrders, id, func() (*OrderView, error) {
		o, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.buildView(ctx, o), nil
	})
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]OrderView, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceOrderLists, userListPrefix+userID, func() ([]OrderView, error) {
		orders, err := s.repo.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.buildViews(ctx, orders), nil
	})
}

func (s *orderService) ListAll(ctx context.Context) ([]OrderView, error) {
	return cache.GetOrLoad(s.cache, cache.NamespaceOrderLists, allListKey, func() ([]OrderView, error) {
		orders, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.buildViews(ctx, orders), nil
	})
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*OrderView, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("unknown order status: %s", status)})
	}

	// Decide against the store, not the cache: a stale cached status must
	// never authorize a transition.
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(o.Status, status) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("order %s cannot move from %s to %s", id, o.Status, status))
	}

	previous := o.Status
	o.Status = status
	o.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	view := s.buildView(ctx, o)
	s.cache.Put(cache.NamespaceOrders, o.OrderID, view)
	s.cache.Invalidate(cache.NamespaceOrderLists, userListPrefix+o.UserID, allListKey)

	s.logger.Info("order status updated",
		zap.String("orderId", o.OrderID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	if user, err := s.users.FindByID(ctx, o.UserID); err == nil {
		s.notifier.Notify(user.Email, "Order Update - "+o.OrderID,
			fmt.Sprintf("Hello %s,\n\nYour order %s is now %s.\n", user.Username, o.OrderID, status))
	}

	return view, nil
}

func (s *orderService) Cancel(ctx context.Context, id string) (*OrderView, error) {
	return s.UpdateStatus(ctx, id, domain.OrderStatusCancelled)
}

// buildView enriches an order with display names. A referenced user,
// restaurant or menu item may have been deleted since placement; the
// order still renders, with the missing name left empty.
func (s *orderService) buildView(ctx context.Context, o *domain.Order) *OrderView {
	var userName, restaurantName string
	if user, err := s.users.FindByID(ctx, o.UserID); err == nil {
		userName = user.Username
	}
	if restaurant, err := s.restaurants.FindByID(ctx, o.RestaurantID); err == nil {
		restaurantName = restaurant.Name
	}

	itemNames := make(map[string]string, len(o.Items))
	for _, line := range o.Items {
		if item, err := s.menus.FindByID(ctx, line.MenuItemID); err == nil {
			itemNames[line.MenuItemID] = item.Name
		}
	}

	return toOrderView(o, userName, restaurantName, itemNames)
}

func (s *orderService) buildViews(ctx context.Context, orders []domain.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *s.buildView(ctx, &orders[i]))
	}
	return views
}
