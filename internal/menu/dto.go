package menu

import "foodcourt/internal/domain"

type MenuRequest struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

type MenuDTO struct {
	MenuID       string  `json:"menuId"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

func toMenuDTO(m *domain.MenuItem) *MenuDTO {
	return &MenuDTO{
		MenuID:       m.MenuID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
	}
}
