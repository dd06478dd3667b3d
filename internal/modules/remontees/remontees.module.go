package remontees

import (
	"isti-portal-core/internal/modules/remontees/controllers"
	"isti-portal-core/internal/modules/remontees/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"
	"isti-portal-core/internal/shared/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewRemonteesService),
	fx.Provide(controllers.NewRemonteesController),
	fx.Invoke(RegisterRemonteesRoutes),
)

func RegisterRemonteesRoutes(
	r *gin.Engine,
	ctrl *controllers.RemonteesController,
	stack *authmw.Stack,
) {
	// Consultation par le responsable de classe, dépôt par l'étudiant
	list := r.Group("/remontees")
	list.Use(authmw.RequireAnyRole(stack, rbac.RoleRespClasse, rbac.RoleAdmin)...)
	{
		list.GET("", ctrl.List)
		list.POST("/statut", ctrl.UpdateStatut)
	}

	submit := r.Group("/remontees/depot")
	submit.Use(authmw.RequireRole(stack, rbac.RoleEtudiant)...)
	{
		submit.POST("", ctrl.Submit)
	}
}
