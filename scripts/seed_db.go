package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the configured database with sample restaurants, pizzas and prices.
// Usage: go run ./scripts -reset
func main() {
	reset := flag.Bool("reset", false, "Delete all restaurants, pizzas and prices before seeding")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to clear database:", err)
		}
		fmt.Println("✓ Cleared restaurants, pizzas and restaurant pizzas")
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Println("Database already has data, nothing seeded. Use -reset to start over.")
	} else {
		fmt.Println("✓ Database seeded")
	}
	printSummary(db, conf.Port)
}

// printSummary lists what is stored so the result can be checked at a glance
func printSummary(db *gorm.DB, port int) {
	var restaurants []models.Restaurant
	if err := db.Preload("RestaurantPizzas.Pizza").Order("id ASC").Find(&restaurants).Error; err != nil {
		log.Printf("Failed to load restaurants: %v", err)
		return
	}
	for _, r := range restaurants {
		fmt.Printf("Restaurant %d: %s (%s)\n", r.ID, r.Name, r.Address)
		for _, rp := range r.RestaurantPizzas {
			fmt.Printf("  - %s at %.2f\n", rp.Pizza.Name, rp.Price)
		}
	}
	fmt.Println("\nTry it:")
	fmt.Printf("curl http://localhost:%d/restaurants\n", port)
}
