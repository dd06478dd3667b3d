package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/filieres/dto"
	"isti-portal-core/internal/modules/filieres/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/filieres"

type FilieresController struct {
	service *services.FilieresService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewFilieresController(service *services.FilieresService, fl *flash.Flash, logger *zap.Logger) *FilieresController {
	return &FilieresController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /filieres
func (c *FilieresController) List(ctx *gin.Context) {
	filieres, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des filières", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filieres": filieres,
	})
}

// Handle POST /filieres — dispatch sur le champ action du formulaire
func (c *FilieresController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "add_filiere":
		var req dto.AddRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le nom et le département sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Create(ctx.Request.Context(), actorID, req), "Filière ajoutée avec succès")

	case "edit_filiere":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le nom et le département sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Update(ctx.Request.Context(), actorID, req), "Filière modifiée avec succès")

	case "delete_filiere":
		var req dto.DeleteRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Filière invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Delete(ctx.Request.Context(), actorID, req.ID), "Filière supprimée avec succès")

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}

func (c *FilieresController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation filière", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}
