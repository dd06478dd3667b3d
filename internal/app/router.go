package app

import (
	"net/http"

	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/logger"
	"isti-portal-core/internal/shared/middleware/security"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, mw *logger.Middleware, db *postgres.Client) *gin.Engine {
	configureGinMode(cfg.Environment)

	r := gin.New()
	r.Use(mw.GinLogger())
	r.Use(mw.GinRecovery())
	r.Use(security.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"status": "healthy"},
		})
	})

	// ready vérifie l'accès à Postgres, pas seulement le process
	r.GET("/ready", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"data":    gin.H{"status": "unavailable"},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"status": "ready"},
		})
	})

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
