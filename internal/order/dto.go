package order

import (
	"time"

	"foodcourt/internal/domain"
)

type PlaceOrderRequest struct {
	RestaurantID string             `json:"restaurantId"`
	Items        []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type OrderLineView struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

type OrderView struct {
	OrderID        string          `json:"orderId"`
	UserID         string          `json:"userId"`
	UserName       string          `json:"userName"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	Items          []OrderLineView `json:"items"`
	TotalPrice     float64         `json:"totalPrice"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

func toOrderView(o *domain.Order, userName, restaurantName string, itemNames map[string]string) *OrderView {
	items := make([]OrderLineView, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, OrderLineView{
			MenuItemID: line.MenuItemID,
			Name:       itemNames[line.MenuItemID],
			Quantity:   line.Quantity,
			Price:      line.Price,
			TotalPrice: line.TotalPrice,
		})
	}

	return &OrderView{
		OrderID:        o.OrderID,
		UserID:         o.UserID,
		UserName:       userName,
		RestaurantID:   o.RestaurantID,
		RestaurantName: restaurantName,
		Items:          items,
		TotalPrice:     o.TotalPrice,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
