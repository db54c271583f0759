package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/docs"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/server"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const databaseStartupTimeout = 30 * time.Second

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger(config.GetEnvWithDefault("APP_ENV", "development"), "")

	// Load configuration
	configuration := loadConfig()
	setUpLogger(configuration.Env, configuration.LogLevel)
	docs.SwaggerInfo.Host = configuration.Addr()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	db := setupDatabase(ctx, configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	srv := server.NewServer(configuration, db)
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger configures the standard logger and the database package logger.
// An explicit level wins over the one derived from the environment.
func setUpLogger(environment, level string) {
	log.SetFormatter(&log.JSONFormatter{})
	lvl := config.LevelForEnvironment(environment)
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.WithError(err).Warnf("Unknown log level %q, keeping %s", level, lvl)
		} else {
			lvl = parsed
		}
	}
	log.SetLevel(lvl)
	database.SetLevel(lvl)
}

// loadConfig loads the application configuration
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates and seeds the database
func setupDatabase(ctx context.Context, conf *config.Config) *gorm.DB {
	dbConfig, err := database.ParseDatabaseURI(conf.DatabaseURL, conf.DatabaseDriver)
	checkPanicErr(err)

	startupCtx, cancel := context.WithTimeout(ctx, databaseStartupTimeout)
	defer cancel()

	db, err := database.InitDatabase(startupCtx, dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.Seed {
		checkPanicErr(database.Seed(startupCtx, db))
	}
	return db
}
