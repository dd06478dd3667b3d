package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/systeme/services"

	"github.com/gin-gonic/gin"
)

type SystemeController struct {
	service *services.SystemeService
}

func NewSystemeController(service *services.SystemeService) *SystemeController {
	return &SystemeController{service: service}
}

// Info GET /api/v1/admin/systeme
func (c *SystemeController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"systeme": c.service.Info(ctx.Request.Context()),
	})
}
