package auth

import (
	"isti-portal-core/internal/app/config"
	redisInfra "isti-portal-core/internal/infrastructure/database/redis"
	"isti-portal-core/internal/modules/auth/controllers"
	"isti-portal-core/internal/modules/auth/services"
	"isti-portal-core/internal/shared/flash"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func NewSessionService(redisClient *redisInfra.Client, cfg *config.Config) *services.SessionService {
	return services.NewSessionService(redisClient, cfg.Session.TTL)
}

func NewFlash(sessions *services.SessionService, cfg *config.Config) *flash.Flash {
	return flash.New(sessions, cfg.Session.CookieName)
}

func NewSessionMiddleware(sessions *services.SessionService, fl *flash.Flash, cfg *config.Config) *authmw.SessionMiddleware {
	return authmw.NewSessionMiddleware(sessions, fl, cfg.Session.CookieName)
}

var Module = fx.Options(
	fx.Provide(NewSessionService),
	fx.Provide(NewFlash),
	fx.Provide(NewSessionMiddleware),
	fx.Provide(services.NewAuthService),
	fx.Provide(controllers.NewAuthController),
	fx.Invoke(RegisterAuthRoutes),
)

func RegisterAuthRoutes(
	r *gin.Engine,
	ctrl *controllers.AuthController,
	stack *authmw.Stack,
) {
	r.POST("/connexion", ctrl.Login)
	r.POST("/deconnexion", ctrl.Logout)
	r.GET("/flash", ctrl.FlashMessage)

	me := r.Group("/api/v1")
	me.Use(authmw.Protected(stack)...)
	{
		me.GET("/moi", ctrl.Me)
	}
}
