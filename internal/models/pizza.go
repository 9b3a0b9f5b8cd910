package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID"`
}
