package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"isti-portal-core/internal/app/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Application porte le serveur HTTP et son cycle de vie Fx
type Application struct {
	config *config.Config
	router *gin.Engine
	logger *zap.Logger
	server *http.Server
}

func NewApplication(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *Application {
	return &Application{
		config: cfg,
		router: router,
		logger: logger,
	}
}

// Start démarre le serveur HTTP via le lifecycle Fx
func (a *Application) Start(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverConfig := a.config.GetServer()

			a.server = &http.Server{
				Addr:         fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
				Handler:      a.router,
				ReadTimeout:  serverConfig.ReadTimeout,
				WriteTimeout: serverConfig.WriteTimeout,
			}

			go func() {
				a.logger.Info("démarrage du serveur HTTP",
					zap.String("host", serverConfig.Host),
					zap.Int("port", serverConfig.Port),
					zap.String("environnement", a.config.Environment))
				if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					a.logger.Error("échec du serveur HTTP", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := a.server.Shutdown(shutdownCtx); err != nil {
				a.logger.Warn("arrêt forcé du serveur HTTP", zap.Error(err))
				return err
			}

			a.logger.Info("serveur HTTP arrêté")
			return nil
		},
	})
}

// IsDevelopment indique si l'application est en mode développement
func (a *Application) IsDevelopment() bool {
	return a.config.Environment == "development"
}
