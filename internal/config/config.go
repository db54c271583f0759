package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

const (
	// EnvPrefix is stripped from environment variables before they are mapped to config keys
	EnvPrefix = "APP_"
	// ConfigFileEnv names the variable holding an optional YAML config file path
	ConfigFileEnv = "APP_CONFIG"
	// DatabaseURIEnv is the database location variable, it wins over every other source
	DatabaseURIEnv = "DB_URI"
	// DefaultDatabaseURL keeps the database next to the binary
	DefaultDatabaseURL = "sqlite:///app.db"
)

// Config used for the application configuration
type Config struct {
	// Server Configuration
	Port    int    `koanf:"port" json:"port"`
	Host    string `koanf:"host" json:"host"`
	Env     string `koanf:"env" json:"env"`
	GinMode string `koanf:"gin_mode" json:"gin_mode"`

	// CORSOrigins is a comma separated list, "*" allows every origin
	CORSOrigins string `koanf:"cors_origins" json:"cors_origins"`

	// Database configuration
	DatabaseURL    string `koanf:"database_url" json:"database_url"`
	DatabaseDriver string `koanf:"database_driver" json:"database_driver"`
	Seed           bool   `koanf:"seed" json:"seed"`

	// Logging configuration
	LogLevel string `koanf:"log_level" json:"log_level"`

	// Security Configuration
	AuthEnabled bool   `koanf:"auth_enabled" json:"auth_enabled"`
	JWTSecret   string `koanf:"jwt_secret" json:"jwt_secret"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Port:        5555,
		Host:        "localhost",
		Env:         "development",
		GinMode:     "debug",
		CORSOrigins: "*",
		DatabaseURL: DefaultDatabaseURL,
		Seed:        true,
		LogLevel:    "",
		AuthEnabled: false,
	}
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Env: %s, GinMode: %s, DatabaseURL: %s, DatabaseDriver: %s, Seed: %t, LogLevel: %s, AuthEnabled: %t, JWTSecret: [REDACTED]}",
		c.Port, c.Host, c.Env, c.GinMode, maskDatabaseURL(c.DatabaseURL), c.DatabaseDriver, c.Seed, c.LogLevel, c.AuthEnabled)
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits CORSOrigins into its entries
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DatabaseURL, validation.Required),
		validation.Field(&c.DatabaseDriver, validation.In("sqlite", "postgres", "postgresql")),
		validation.Field(&c.GinMode, validation.In("debug", "release", "test")),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal", "panic")),
	)
	if err != nil {
		return err
	}
	if c.AuthEnabled {
		if err := validation.Validate(c.JWTSecret, validation.Required, validation.Length(32, 0)); err != nil {
			return fmt.Errorf("jwt_secret: %w", err)
		}
	}
	return nil
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig builds a Config by layering, from low to high precedence:
//  1. defaults
//  2. the YAML file named by APP_CONFIG, if set
//  3. APP_* environment variables (APP_LOG_LEVEL -> log_level)
//  4. DB_URI
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration")
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		log.WithField("path", path).Debug("Loading configuration file")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	config := Default()
	if err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	config.DatabaseURL = GetEnvWithDefault(DatabaseURIEnv, config.DatabaseURL)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment picks the log level used when none is configured explicitly
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
