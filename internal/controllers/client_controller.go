package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const defaultClientScopes = "read write"

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client owned by the authenticated user. The secret is only returned once.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body models.CreateClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Client creation failed"
// @Security BearerAuth
// @Router /api/v1/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgValidationErrors))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
		return
	}

	// Generate client secret
	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("secret_generation_failed"))
		return
	}

	if req.Scopes == "" {
		req.Scopes = defaultClientScopes
	}
	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashedSecret),
		Name:       req.Name,
		Domain:     req.Domain,
		Scopes:     req.Scopes,
		GrantTypes: "client_credentials",
		UserID:     c.GetUint(middleware.ContextUserID),
	}

	if err := cc.clientService.CreateClient(c.Request.Context(), client); err != nil {
		log.WithError(err).WithField("user_id", client.UserID).Error("Failed to create OAuth client")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_creation_failed"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient "List of clients"
// @Failure 500 {object} models.ErrorResponse "Failed to retrieve clients"
// @Security BearerAuth
// @Router /api/v1/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to list OAuth clients")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("failed_to_retrieve_clients"))
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")
	userID := c.GetUint(middleware.ContextUserID)

	if err := cc.clientService.DeleteClient(c.Request.Context(), clientID, userID); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, models.NewErrorResponse("client_not_found"))
			return
		}
		log.WithError(err).WithField("client_id", clientID).Error("Failed to delete OAuth client")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_deletion_failed"))
		return
	}

	c.Status(http.StatusNoContent)
}
