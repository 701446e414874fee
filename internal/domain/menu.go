package domain

type MenuItem struct {
	MenuID       string
	RestaurantID string
	Name         string
	Description  string
	Price        float64
}
