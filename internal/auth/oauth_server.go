package auth

import (
	"context"
	"time"

	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccessTokenTTL is the lifetime of tokens issued through client credentials
const AccessTokenTTL = 2 * time.Hour

type OAuthService struct {
	server *server.Server
	tokens *GormTokenStore
}

func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})

	// Access tokens are JWTs carrying the owner's uid and role
	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, db))

	tokens := NewGormTokenStore(db)
	manager.MustTokenStorage(tokens, nil)
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowGetAccessRequest(false)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server: srv,
		tokens: tokens,
	}
}

// PurgeExpiredTokens deletes expired tokens every interval until ctx is done
func (o *OAuthService) PurgeExpiredTokens(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			purged, err := o.tokens.PurgeExpired(ctx, now)
			if err != nil {
				log.WithError(err).Warn("Failed to purge expired tokens")
				continue
			}
			if purged > 0 {
				log.WithField("purged", purged).Debug("Purged expired tokens")
			}
		}
	}
}
