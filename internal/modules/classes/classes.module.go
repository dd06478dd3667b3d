package classes

import (
	"isti-portal-core/internal/modules/classes/controllers"
	"isti-portal-core/internal/modules/classes/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"
	"isti-portal-core/internal/shared/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewClassesService),
	fx.Provide(controllers.NewClassesController),
	fx.Invoke(RegisterClassesRoutes),
)

func RegisterClassesRoutes(
	r *gin.Engine,
	ctrl *controllers.ClassesController,
	stack *authmw.Stack,
) {
	page := r.Group("/classes")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}

	// L'effectif est aussi consultable par le responsable de classe
	roster := r.Group("/classes/:id/inscrits")
	roster.Use(authmw.RequireAnyRole(stack, rbac.RoleAdmin, rbac.RoleRespClasse)...)
	{
		roster.GET("", ctrl.Roster)
	}
}
