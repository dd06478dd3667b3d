package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/departements/dto"
	"isti-portal-core/internal/modules/departements/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/departements"

type DepartementsController struct {
	service *services.DepartementsService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewDepartementsController(service *services.DepartementsService, fl *flash.Flash, logger *zap.Logger) *DepartementsController {
	return &DepartementsController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /departements
func (c *DepartementsController) List(ctx *gin.Context) {
	departements, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des départements", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"departements": departements,
	})
}

// Handle POST /departements — dispatch sur le champ action du formulaire
func (c *DepartementsController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "add_departement":
		var req dto.AddRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le nom du département est requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Create(ctx.Request.Context(), actorID, req), "Département ajouté avec succès")

	case "edit_departement":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le nom du département est requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Update(ctx.Request.Context(), actorID, req), "Département modifié avec succès")

	case "delete_departement":
		var req dto.DeleteRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Département invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Delete(ctx.Request.Context(), actorID, req.ID), "Département supprimé avec succès")

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}

func (c *DepartementsController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation département", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}
