package settings

import (
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/modules/settings/controllers"
	"isti-portal-core/internal/modules/settings/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(db *postgres.Client) services.Store {
		return services.NewPgStore(db)
	}),
	fx.Provide(services.NewSettingsService),
	fx.Provide(controllers.NewSettingsController),
	fx.Invoke(RegisterSettingsRoutes),
)

func RegisterSettingsRoutes(
	r *gin.Engine,
	ctrl *controllers.SettingsController,
	stack *authmw.Stack,
) {
	page := r.Group("/parametres")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}
}
