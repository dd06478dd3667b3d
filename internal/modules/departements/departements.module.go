package departements

import (
	"isti-portal-core/internal/modules/departements/controllers"
	"isti-portal-core/internal/modules/departements/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewDepartementsService),
	fx.Provide(controllers.NewDepartementsController),
	fx.Invoke(RegisterDepartementsRoutes),
)

func RegisterDepartementsRoutes(
	r *gin.Engine,
	ctrl *controllers.DepartementsController,
	stack *authmw.Stack,
) {
	page := r.Group("/departements")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}
}
