package systeme

import (
	"isti-portal-core/internal/modules/systeme/controllers"
	"isti-portal-core/internal/modules/systeme/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewSystemeService),
	fx.Provide(controllers.NewSystemeController),
	fx.Invoke(RegisterSystemeRoutes),
)

func RegisterSystemeRoutes(
	r *gin.Engine,
	ctrl *controllers.SystemeController,
	stack *authmw.Stack,
) {
	api := r.Group("/api/v1/admin/systeme")
	api.Use(authmw.RequireAdmin(stack)...)
	{
		api.GET("", ctrl.Info)
	}
}
