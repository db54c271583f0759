package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const headerRequestID = "X-Request-ID"

// CORS allows browsers on the given origins to call the API. "*" allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", headerRequestID},
		ExposeHeaders: []string{"Content-Length", headerRequestID},
		MaxAge:        12 * time.Hour,
	})
}
