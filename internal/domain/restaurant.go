package domain

type Restaurant struct {
	RestaurantID string
	Name         string
	Address      string
	Phone        string
}
