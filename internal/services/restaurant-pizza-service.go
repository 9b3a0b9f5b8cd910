package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// GetAllRestaurantPizzas retrieves every association without nested records
	GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error)
	// CreateRestaurantPizza validates and persists a new association.
	// The returned value has Restaurant and Pizza loaded.
	CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db       *gorm.DB
	validate *validator.Validate
	log      logrus.FieldLogger
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB, log logrus.FieldLogger) RestaurantPizzaService {
	return &restaurantPizzaService{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

func (s *restaurantPizzaService) GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	var rps []models.RestaurantPizza
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rps).Error; err != nil {
		return nil, err
	}
	return rps, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID uint) (models.RestaurantPizza, error) {
	rp := models.RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	if err := s.validate.Struct(rp); err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rp.Restaurant, restaurantID).Error; err != nil {
			return referenceError("restaurant", restaurantID, err)
		}
		if err := tx.First(&rp.Pizza, pizzaID).Error; err != nil {
			return referenceError("pizza", pizzaID, err)
		}

		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return fmt.Errorf("%w: %v", ErrValidationFailed, err)
			}
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	s.log.WithFields(logrus.Fields{
		"restaurant_pizza_id": rp.ID,
		"restaurant_id":       restaurantID,
		"pizza_id":            pizzaID,
		"price":               price,
	}).Info("Restaurant pizza created")
	return rp, nil
}

func referenceError(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", ErrValidationFailed, entity, id)
	}
	return fmt.Errorf("load %s %d: %w", entity, id, err)
}
