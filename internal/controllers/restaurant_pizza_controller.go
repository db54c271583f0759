package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests that add pizzas to menus
type RestaurantPizzaController interface {
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service  services.RestaurantPizzaService
	recorder EventRecorder
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, recorder EventRecorder) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, recorder: recorderOrNoop(recorder)}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant menu
// @Description Create a priced association between an existing pizza and an existing restaurant
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaRequest true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req models.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		requestLogger(ctx).WithError(err).Debug("Invalid request body")
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgValidationErrors))
		return
	}

	restaurantPizza, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req)
	if err != nil {
		var persistenceErr *services.PersistenceError
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgValidationErrors))
		case errors.Is(err, services.ErrPizzaOrRestaurantNotFound):
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaOrRestaurantNotFound))
		case errors.As(err, &persistenceErr):
			requestLogger(ctx).WithError(err).WithField("op", persistenceErr.Op).Warn("Failed to store restaurant pizza")
			ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(persistenceErr.Error()))
		default:
			requestLogger(ctx).WithError(err).Error("Failed to create restaurant pizza")
			ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
		}
		return
	}

	c.recorder.RestaurantPizzaCreated()
	requestLogger(ctx).WithFields(log.Fields{
		"restaurant_pizza_id": restaurantPizza.ID,
		"restaurant_id":       restaurantPizza.RestaurantID,
		"pizza_id":            restaurantPizza.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, models.NewCreatedRestaurantPizzaResponse(restaurantPizza))
}
