package services

import (
	"context"
	"io"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fixtures creates two restaurants and two pizzas; the first restaurant sells both pizzas
func fixtures(t *testing.T, db *gorm.DB) ([]models.Restaurant, []models.Pizza) {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Description: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Description: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&restaurants).Error)
	require.NoError(t, db.Create(&pizzas).Error)
	require.NoError(t, db.Create(&[]models.RestaurantPizza{
		{Price: 10, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
		{Price: 12, RestaurantID: restaurants[0].ID, PizzaID: pizzas[1].ID},
	}).Error)
	return restaurants, pizzas
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db, testLogger())
	ctx := context.Background()

	restaurants, err := svc.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	created, _ := fixtures(t, db)
	restaurants, err = svc.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, created[0].ID, restaurants[0].ID)
	assert.Equal(t, created[1].Name, restaurants[1].Name)
	assert.Nil(t, restaurants[0].RestaurantPizzas)
}

func TestGetRestaurantByIDPreloadsAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db, testLogger())
	restaurants, pizzas := fixtures(t, db)

	restaurant, err := svc.GetRestaurantByID(context.Background(), restaurants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Karen's Pizza Shack", restaurant.Name)
	require.Len(t, restaurant.RestaurantPizzas, 2)
	assert.Equal(t, pizzas[0].Name, restaurant.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, pizzas[1].Name, restaurant.RestaurantPizzas[1].Pizza.Name)

	empty, err := svc.GetRestaurantByID(context.Background(), restaurants[1].ID)
	require.NoError(t, err)
	assert.Empty(t, empty.RestaurantPizzas)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t), testLogger())

	_, err := svc.GetRestaurantByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db, testLogger())
	ctx := context.Background()
	restaurants, pizzas := fixtures(t, db)

	require.NoError(t, svc.DeleteRestaurant(ctx, restaurants[0].ID))

	_, err := svc.GetRestaurantByID(ctx, restaurants[0].ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var orphans int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurants[0].ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	// pizzas are untouched
	var pizzaCount int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzaCount).Error)
	assert.EqualValues(t, len(pizzas), pizzaCount)

	assert.ErrorIs(t, svc.DeleteRestaurant(ctx, restaurants[0].ID), ErrRestaurantNotFound)
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)
	_, created := fixtures(t, db)

	pizzas, err := svc.GetAllPizzas(context.Background())
	require.NoError(t, err)
	require.Len(t, pizzas, len(created))
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese, Pepperoni", pizzas[1].Description)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantPizzaService(db, testLogger())
	restaurants, pizzas := fixtures(t, db)

	rp, err := svc.CreateRestaurantPizza(context.Background(), 10.99, pizzas[0].ID, restaurants[1].ID)
	require.NoError(t, err)
	assert.NotZero(t, rp.ID)
	assert.Equal(t, 10.99, rp.Price)
	assert.Equal(t, "Sanjay's Pizza", rp.Restaurant.Name)
	assert.Equal(t, "Emma", rp.Pizza.Name)

	all, err := svc.GetAllRestaurantPizzas(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateRestaurantPizzaValidation(t *testing.T) {
	existing := func(r []models.Restaurant, p []models.Pizza) (uint, uint) { return p[0].ID, r[0].ID }

	testCases := []struct {
		name  string
		price float64
		ids   func(r []models.Restaurant, p []models.Pizza) (pizzaID, restaurantID uint)
	}{
		{name: "price below range", price: models.MinPrice - 1, ids: existing},
		{name: "price above range", price: models.MaxPrice + 1, ids: existing},
		{
			name:  "missing pizza",
			price: 5,
			ids:   func(r []models.Restaurant, p []models.Pizza) (uint, uint) { return 999, r[0].ID },
		},
		{
			name:  "missing restaurant",
			price: 5,
			ids:   func(r []models.Restaurant, p []models.Pizza) (uint, uint) { return p[0].ID, 999 },
		},
		{
			name:  "zero ids",
			price: 5,
			ids:   func(r []models.Restaurant, p []models.Pizza) (uint, uint) { return 0, 0 },
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewRestaurantPizzaService(db, testLogger())
			restaurants, pizzas := fixtures(t, db)
			pizzaID, restaurantID := tt.ids(restaurants, pizzas)

			_, err := svc.CreateRestaurantPizza(context.Background(), tt.price, pizzaID, restaurantID)
			assert.ErrorIs(t, err, ErrValidationFailed)

			var count int64
			require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
			assert.EqualValues(t, 2, count)
		})
	}
}

func TestCreateRestaurantPizzaBoundaries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantPizzaService(db, testLogger())
	restaurants, pizzas := fixtures(t, db)

	for _, price := range []float64{models.MinPrice, models.MaxPrice} {
		_, err := svc.CreateRestaurantPizza(context.Background(), price, pizzas[1].ID, restaurants[1].ID)
		assert.NoError(t, err, "price %v should be accepted", price)
	}
}
