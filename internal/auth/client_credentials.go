package auth

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	log "github.com/sirupsen/logrus"
)

// HandleToken handles the token endpoint
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	switch grantType := c.PostForm("grant_type"); grantType {
	case oauth2.ClientCredentials.String():
		o.handleClientCredentials(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_grant_type"})
	}
}

func (o *OAuthService) handleClientCredentials(c *gin.Context) {
	clientID := c.PostForm("client_id")
	clientSecret := c.PostForm("client_secret")
	if clientID == "" || clientSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	client, err := o.server.Manager.GetClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_client"})
		return
	}

	scope := c.PostForm("scope")
	if scope == "" {
		if stored, ok := client.(*models.OAuthClient); ok {
			scope = stored.Scopes
		}
	}

	// The manager verifies the secret through ClientPasswordVerifier (bcrypt)
	ti, err := o.server.Manager.GenerateAccessToken(c.Request.Context(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        scope,
		Request:      c.Request,
	})
	if err != nil {
		if errors.Is(err, oauth2errors.ErrInvalidClient) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_client"})
			return
		}
		log.WithError(err).WithField("client_id", clientID).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	})
}
