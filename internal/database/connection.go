package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

const (
	defaultMaxRetries = 5
	defaultRetryDelay = 1 * time.Second
)

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with retry logic and connection pooling.
// The delay between attempts doubles after each failure.
func InitDatabase(ctx context.Context, cfg DatabaseConfig) (*gorm.DB, error) {
	driver := normalizeDriver(cfg.Driver)
	if driver == "" {
		driver = "sqlite"
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Debug("Attempting database connection")

		var db *gorm.DB
		db, err = open(ctx, dialector, driver == "sqlite" && isInMemory(cfg.Path))
		if err == nil {
			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt == maxRetries {
			break
		}
		log.WithField("delay", delay).Info("Retrying database connection")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func open(ctx context.Context, dialector gorm.Dialector, inMemory bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	configureConnectionPool(sqlDB, inMemory)
	return db, nil
}

// configureConnectionPool sets up connection pool parameters.
// An in-memory database is dropped when its last connection closes, so
// its connections are never recycled.
func configureConnectionPool(sqlDB *sql.DB, inMemory bool) {
	maxOpen, maxIdle, lifetime := 25, 5, 5*time.Minute
	if inMemory {
		lifetime = 0
		sqlDB.SetConnMaxIdleTime(0)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    maxIdle,
		"conn_max_lifetime": lifetime.String(),
		"in_memory":         inMemory,
	}).Debug("Connection pool configured")
}

// Ping checks that the database still answers
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
