package users

import (
	"isti-portal-core/internal/modules/users/controllers"
	"isti-portal-core/internal/modules/users/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(services.NewUsersService),
	fx.Provide(controllers.NewUsersController),
	fx.Invoke(RegisterUsersRoutes),
)

func RegisterUsersRoutes(
	r *gin.Engine,
	ctrl *controllers.UsersController,
	stack *authmw.Stack,
) {
	page := r.Group("/utilisateurs")
	page.Use(authmw.RequireAdmin(stack)...)
	{
		page.GET("", ctrl.List)
		page.POST("", ctrl.Handle)
	}

	api := r.Group("/api/v1/admin/utilisateurs")
	api.Use(authmw.RequireAdmin(stack)...)
	{
		api.GET("/lookup", ctrl.Lookup)
	}
}
