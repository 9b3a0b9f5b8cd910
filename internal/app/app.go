package app

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App is built once at startup and handed to the handlers; nothing in it changes afterwards
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *logrus.Logger
	Router *gin.Engine

	restaurants      controllers.RestaurantController
	pizzas           controllers.PizzaController
	restaurantPizzas controllers.RestaurantPizzaController
}

// New wires services and controllers on top of an open database and registers the routes
func New(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *App {
	a := &App{
		Config: cfg,
		DB:     db,
		Log:    log,
	}

	a.restaurants = controllers.NewRestaurantController(services.NewRestaurantService(db, log), log)
	a.pizzas = controllers.NewPizzaController(services.NewPizzaService(db), log)
	a.restaurantPizzas = controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db, log), log)

	a.Router = a.setupRouter()
	return a
}

// Bootstrap opens the configured store, migrates it, seeds it when enabled and builds the App
func Bootstrap(cfg *config.Config, log *logrus.Logger) (*App, error) {
	database.SetLogger(log)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart {
		if _, err := database.SeedIfEmpty(db); err != nil {
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}
	return New(cfg, db, log), nil
}

// Run blocks serving HTTP on the configured address
func (a *App) Run() error {
	addr := a.Config.Addr()
	a.Log.Infof("Starting server on %s", addr)
	return a.Router.Run(addr)
}

// Close releases the database pool
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
