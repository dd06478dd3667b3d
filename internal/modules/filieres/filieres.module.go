package filieres

import (
	"isti-portal-core/internal/modules/filieres/controllers"
	"isti-portal-core/internal/modules/filieres/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewFilieresService),
	fx.Provide(controllers.NewFilieresController),
	fx.Invoke(RegisterFilieresRoutes),
)

func RegisterFilieresRoutes(
	r *gin.Engine,
	ctrl *controllers.FilieresController,
	stack *authmw.Stack,
) {
	page := r.Group("/filieres")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}
}
