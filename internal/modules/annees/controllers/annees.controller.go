package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/annees/dto"
	"isti-portal-core/internal/modules/annees/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/annees"

type AnneesController struct {
	service *services.AnneesService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewAnneesController(service *services.AnneesService, fl *flash.Flash, logger *zap.Logger) *AnneesController {
	return &AnneesController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /annees
func (c *AnneesController) List(ctx *gin.Context) {
	annees, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des années", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"annees":  annees,
	})
}

// Handle POST /annees — dispatch sur le champ action du formulaire
func (c *AnneesController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "add_annee":
		var req dto.AddRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Tous les champs de l'année sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Create(ctx.Request.Context(), actorID, req), "Année académique ajoutée avec succès")

	case "edit_annee":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Tous les champs de l'année sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Update(ctx.Request.Context(), actorID, req), "Année académique modifiée avec succès")

	case "delete_annee":
		var req dto.DeleteRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Année invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Delete(ctx.Request.Context(), actorID, req.ID), "Année académique supprimée avec succès")

	case "toggle_annee":
		var req dto.ToggleRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Année invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Toggle(ctx.Request.Context(), actorID, req.ID), "Statut de l'année mis à jour")

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}

func (c *AnneesController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation année académique", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}
