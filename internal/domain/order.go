package domain

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// validTransitions is the authoritative lifecycle definition:
// PLACED → PREPARING → DELIVERED, with CANCELLED reachable from
// PLACED and PREPARING. DELIVERED and CANCELLED are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine is a value object owned by its Order. Price is the menu item
// price snapshotted at placement time; later menu edits never touch it.
type OrderLine struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// Order is the aggregate root; lines are embedded and persisted with it.
type Order struct {
	OrderID      string
	UserID       string
	RestaurantID string
	Items        []OrderLine
	TotalPrice   float64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
