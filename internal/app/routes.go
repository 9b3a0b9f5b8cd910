package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/docs"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const indexPage = "<h1>Code challenge</h1>"

// setupRouter initializes the Gin router and sets up the routes
func (a *App) setupRouter() *gin.Engine {
	if a.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(a.Log), gin.Recovery())

	a.setupRoutes(router)
	return router
}

// setupRoutes defines the routes for the Gin router
func (a *App) setupRoutes(router *gin.Engine) {
	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	router.GET("/restaurants", a.restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", a.restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", a.restaurants.DeleteRestaurant)

	router.GET("/pizzas", a.pizzas.GetAllPizzas)

	router.GET("/restaurant_pizzas", a.restaurantPizzas.GetAllRestaurantPizzas)
	router.POST("/restaurant_pizzas", a.restaurantPizzas.CreateRestaurantPizza)

	// Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", a.Config.Host, a.Config.Port)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler godoc
// @Summary Index page
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-pizza-api",
	})
}
