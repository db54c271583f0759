package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists every restaurant without its menu
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns one restaurant with its menu
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant removes a restaurant and its menu
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service  services.RestaurantService
	recorder EventRecorder
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, recorder EventRecorder) RestaurantController {
	return &restaurantController{service: service, recorder: recorderOrNoop(recorder)}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		requestLogger(ctx).WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}

	response := make([]models.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, models.NewRestaurantResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it serves
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		requestLogger(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetailResponse(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every pizza entry on its menu
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		requestLogger(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}

	c.recorder.RestaurantDeleted()
	requestLogger(ctx).WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}
