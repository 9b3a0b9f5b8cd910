package dto

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Pointers distinguish a missing field from a zero value.
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required"`
	PizzaID      *uint    `json:"pizza_id" binding:"required"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required"`
}
