package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/dto"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza prices
type RestaurantPizzaController interface {
	// GetAllRestaurantPizzas lists every restaurant pizza
	GetAllRestaurantPizzas(c *gin.Context)
	// CreateRestaurantPizza adds a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
	log     logrus.FieldLogger
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, log logrus.FieldLogger) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, log: log}
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Description List every restaurant pizza without nested restaurant or pizza
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} dto.RestaurantPizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	rps, err := c.service.GetAllRestaurantPizzas(ctx.Request.Context())
	if err != nil {
		c.log.WithError(err).Error("Failed to retrieve restaurant pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRestaurantPizzaSummaries(rps))
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body dto.CreateRestaurantPizzaRequest true "Price and references"
// @Success 201 {object} dto.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req dto.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.WithError(err).Debug("Rejected restaurant pizza body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	rp, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *req.Price, *req.PizzaID, *req.RestaurantID)
	if err != nil {
		if errors.Is(err, services.ErrValidationFailed) {
			c.log.WithError(err).Debug("Rejected restaurant pizza")
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
			return
		}
		c.log.WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewRestaurantPizzaDetail(rp))
}
