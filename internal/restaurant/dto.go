package restaurant

import "foodcourt/internal/domain"

type RestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type RestaurantDTO struct {
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

func toRestaurantDTO(r *domain.Restaurant) *RestaurantDTO {
	return &RestaurantDTO{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
	}
}
