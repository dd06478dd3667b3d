package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/remontees/dto"
	"isti-portal-core/internal/modules/remontees/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/remontees"

type RemonteesController struct {
	service *services.RemonteesService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewRemonteesController(service *services.RemonteesService, fl *flash.Flash, logger *zap.Logger) *RemonteesController {
	return &RemonteesController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /remontees?classe_id=
func (c *RemonteesController) List(ctx *gin.Context) {
	classeID := ctx.Query("classe_id")
	if classeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Classe manquante",
		})
		return
	}

	remontees, err := c.service.ListByClasse(ctx.Request.Context(), classeID)
	if err != nil {
		c.logger.Error("liste des remontées", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"remontees": remontees,
	})
}

// Submit POST /remontees — dépôt par un étudiant
func (c *RemonteesController) Submit(ctx *gin.Context) {
	etudiantID := ctx.GetString("user_id")

	var req dto.AddRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.flash.RedirectWithMessage(ctx, pageURL, "La classe, le sujet et la description sont requis", flash.SeverityError)
		return
	}

	c.finish(ctx, c.service.Create(ctx.Request.Context(), etudiantID, req), "Remontée déposée avec succès")
}

// UpdateStatut POST /remontees/statut — traitement par le responsable de classe
func (c *RemonteesController) UpdateStatut(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	var req dto.UpdateStatutRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.flash.RedirectWithMessage(ctx, pageURL, "Remontée invalide", flash.SeverityError)
		return
	}

	c.finish(ctx, c.service.UpdateStatut(ctx.Request.Context(), actorID, req), "Statut de la remontée mis à jour")
}

func (c *RemonteesController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation remontée", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}
