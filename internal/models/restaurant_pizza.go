package models

// Price bounds accepted for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links a Restaurant and a Pizza with the price the restaurant charges
type RestaurantPizza struct {
	ID           uint    `gorm:"primaryKey"`
	Price        float64 `gorm:"not null" validate:"gte=1,lte=30"`
	RestaurantID uint    `gorm:"not null;index" validate:"required"`
	PizzaID      uint    `gorm:"not null;index" validate:"required"`

	Restaurant Restaurant `validate:"-"`
	Pizza      Pizza      `validate:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}
