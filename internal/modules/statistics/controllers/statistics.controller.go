package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/statistics/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatisticsController struct {
	service *services.StatisticsService
	logger  *zap.Logger
}

func NewStatisticsController(service *services.StatisticsService, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{
		service: service,
		logger:  logger,
	}
}

// Dashboard GET /api/v1/admin/statistiques
func (c *StatisticsController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.service.Dashboard(ctx.Request.Context())
	if err != nil {
		c.logger.Error("tableau de bord statistiques", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"statistiques": dashboard,
	})
}
