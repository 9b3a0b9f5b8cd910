package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/dto"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
	log     logrus.FieldLogger
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, log logrus.FieldLogger) PizzaController {
	return &pizzaController{service: service, log: log}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas without their restaurant associations
// @Tags pizzas
// @Produce json
// @Success 200 {array} dto.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		c.log.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPizzaSummaries(pizzas))
}
