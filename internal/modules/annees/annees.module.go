package annees

import (
	"isti-portal-core/internal/modules/annees/controllers"
	"isti-portal-core/internal/modules/annees/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewAnneesService),
	fx.Provide(controllers.NewAnneesController),
	fx.Invoke(RegisterAnneesRoutes),
)

func RegisterAnneesRoutes(
	r *gin.Engine,
	ctrl *controllers.AnneesController,
	stack *authmw.Stack,
) {
	page := r.Group("/annees")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}
}
