package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the sample data only when no restaurant and no pizza exist yet
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	return true, Seed(db)
}

// Reset removes every row from the three tables, children first
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Seed inserts the sample restaurants, pizzas and a price list in one transaction
func Seed(db *gorm.DB) error {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Description: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Description: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Description: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}
	prices := []float64{1, 4, 5}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		associations := make([]models.RestaurantPizza, 0, len(restaurants))
		for i := range restaurants {
			associations = append(associations, models.RestaurantPizza{
				Price:        prices[i],
				RestaurantID: restaurants[i].ID,
				PizzaID:      pizzas[i].ID,
			})
		}
		if err := tx.Create(&associations).Error; err != nil {
			return fmt.Errorf("seed restaurant pizzas: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}
