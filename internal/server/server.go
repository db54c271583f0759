package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // registers the swagger document
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/auth"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	serviceName       = "restaurant-pizza-api"
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
	tokenPurgeEvery   = 10 * time.Minute
)

// Server holds the router and everything the handlers share
type Server struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Metrics *metrics.Metrics

	oauth *auth.OAuthService
}

// NewServer builds the router with every route mounted. Routes that change
// data are only protected when auth is enabled in cfg.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	gin.SetMode(cfg.GinMode)
	engine := gin.New()

	s := &Server{
		Config:  cfg,
		Router:  engine,
		DB:      db,
		Metrics: metrics.New(),
	}
	if cfg.AuthEnabled {
		s.oauth = auth.NewOAuthService(db, cfg.JWTSecret)
	}

	s.MountMiddlewares()
	s.MountHandlers()

	return s
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.CORS(s.Config.AllowedOrigins()))
	s.Router.Use(middleware.RequestLogger(log.StandardLogger()))
	s.Router.Use(s.Metrics.Middleware())
}

func (s *Server) MountHandlers() {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(s.DB), s.Metrics)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(s.DB))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(s.DB), s.Metrics)

	s.Router.GET("/", indexHandler)
	s.Router.GET("/health", s.healthCheckHandler)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	s.Router.GET("/restaurants", restaurantController.GetAllRestaurants)
	s.Router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	s.Router.GET("/pizzas", pizzaController.GetAllPizzas)

	admin := s.adminOnly()
	s.Router.DELETE("/restaurants/:id", append(admin, restaurantController.DeleteRestaurant)...)
	s.Router.POST("/restaurant_pizzas", append(admin, restaurantPizzaController.CreateRestaurantPizza)...)

	if s.oauth != nil {
		s.Router.POST("/oauth/token", s.oauth.HandleToken)

		clientController := controllers.NewClientController(services.NewClientService(s.DB))
		clients := s.Router.Group("/api/v1/clients", s.adminOnly()...)
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.ListClients)
			clients.DELETE("/:id", clientController.DeleteClient)
		}
	}

	// Setup Swagger UI.
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// adminOnly returns the chain guarding mutating routes, empty when auth is off
func (s *Server) adminOnly() []gin.HandlerFunc {
	if s.oauth == nil {
		return nil
	}
	return []gin.HandlerFunc{
		middleware.OAuth2Auth([]byte(s.Config.JWTSecret)),
		middleware.RequireRole(models.RoleAdmin),
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Config.Addr(),
		Handler:           s.Router,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if s.oauth != nil {
		go s.oauth.PurgeExpiredTokens(ctx, tokenPurgeEvery)
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check that the service and its database are up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (s *Server) healthCheckHandler(c *gin.Context) {
	status, dbStatus, code := "healthy", "up", http.StatusOK
	if err := database.Ping(c.Request.Context(), s.DB); err != nil {
		log.WithError(err).Warn("Health check failed to reach the database")
		status, dbStatus, code = "unhealthy", "down", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
