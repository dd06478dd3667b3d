package audit

import (
	"isti-portal-core/internal/infrastructure/database/mongodb"
	"isti-portal-core/internal/modules/audit/controllers"
	"isti-portal-core/internal/modules/audit/services"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewRecorder(client *mongodb.Client, logger *zap.Logger) *services.Recorder {
	return services.NewRecorder(client.Collection(mongodb.AuditCollection), logger)
}

var Module = fx.Options(
	fx.Provide(NewRecorder),
	fx.Provide(services.NewJournalService),
	fx.Provide(controllers.NewJournalController),
	fx.Invoke(RegisterJournalRoutes),
)

func RegisterJournalRoutes(
	r *gin.Engine,
	ctrl *controllers.JournalController,
	stack *authmw.Stack,
) {
	api := r.Group("/api/v1/admin/journal")
	api.Use(authmw.RequireAdmin(stack)...)
	{
		api.GET("", ctrl.List)
	}
}
