package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas in one transaction
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB, log logrus.FieldLogger) RestaurantService {
	return &restaurantService{db: db, log: log}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_pizzas.id ASC")
		}).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFound(err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return notFound(err)
		}

		children := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if children.Error != nil {
			return fmt.Errorf("delete restaurant pizzas: %w", children.Error)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant: %w", err)
		}

		s.log.WithFields(logrus.Fields{
			"restaurant_id":             id,
			"restaurant_pizzas_deleted": children.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRestaurantNotFound
	}
	return err
}
