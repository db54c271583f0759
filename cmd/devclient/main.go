// Command devclient creates an OAuth2 client for local testing of the
// protected routes. Run it against the same database as the API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type devCredentials struct {
	clientID string
	secret   string
}

var credentialsByRole = map[string]devCredentials{
	models.RoleAdmin: {clientID: "dev-client", secret: "dev-secret-123"},
	models.RoleUser:  {clientID: "user-client", secret: "user-secret-123"},
}

func main() {
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.JSONFormatter{})

	creds, ok := credentialsByRole[*role]
	if !ok {
		log.Fatalf("Unknown role %q, expected %s or %s", *role, models.RoleAdmin, models.RoleUser)
	}

	if err := run(context.Background(), *role, creds); err != nil {
		log.WithError(err).Fatal("Failed to create development client")
	}
}

func run(ctx context.Context, role string, creds devCredentials) error {
	conf, err := config.LoadConfig()
	if err != nil {
		return err
	}
	dbConfig, err := database.ParseDatabaseURI(conf.DatabaseURL, conf.DatabaseDriver)
	if err != nil {
		return err
	}
	db, err := database.InitDatabase(ctx, dbConfig)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	clients := services.NewClientService(db)
	if _, err := clients.GetClientByID(ctx, creds.clientID); err == nil {
		fmt.Printf("Development client already exists for role '%s'!\n", role)
		printCredentials(conf, creds)
		return nil
	} else if !errors.Is(err, services.ErrClientNotFound) {
		return err
	}

	user, created, err := services.NewUserService(db).GetOrCreateUser(ctx, fmt.Sprintf("%s@pizza.com", role), fmt.Sprintf("%s User", role), role)
	if err != nil {
		return fmt.Errorf("failed to get user for role %s: %w", role, err)
	}
	if created {
		fmt.Printf("Created new user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	} else {
		fmt.Printf("Found existing user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}

	client := &models.OAuthClient{
		ID:         creds.clientID,
		Secret:     string(hash),
		Name:       fmt.Sprintf("Development %s Client", role),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	if err := clients.CreateClient(ctx, client); err != nil {
		return err
	}

	fmt.Printf("Development OAuth client created for role '%s'!\n", role)
	printCredentials(conf, creds)
	if !conf.AuthEnabled {
		fmt.Fprintln(os.Stderr, "Note: APP_AUTH_ENABLED is false, the API does not check tokens.")
	}
	return nil
}

func printCredentials(conf *config.Config, creds devCredentials) {
	fmt.Printf("Client ID: %s\n", creds.clientID)
	fmt.Printf("Client Secret: %s\n", creds.secret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s/oauth/token \\\n", conf.Addr())
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", creds.clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", creds.secret)
}
