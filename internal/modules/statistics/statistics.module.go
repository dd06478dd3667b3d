package statistics

import (
	"isti-portal-core/internal/modules/statistics/controllers"
	"isti-portal-core/internal/modules/statistics/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewStatisticsService),
	fx.Provide(controllers.NewStatisticsController),
	fx.Invoke(RegisterStatisticsRoutes),
)

func RegisterStatisticsRoutes(
	r *gin.Engine,
	ctrl *controllers.StatisticsController,
	stack *authmw.Stack,
) {
	api := r.Group("/api/v1/admin/statistiques")
	api.Use(authmw.RequireAdmin(stack)...)
	{
		api.GET("", ctrl.Dashboard)
	}
}
