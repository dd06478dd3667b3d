package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/settings/dto"
	"isti-portal-core/internal/modules/settings/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/parametres"

type SettingsController struct {
	service *services.Service
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewSettingsController(service *services.Service, fl *flash.Flash, logger *zap.Logger) *SettingsController {
	return &SettingsController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /parametres
func (c *SettingsController) List(ctx *gin.Context) {
	entries, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des paramètres", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"parametres": entries,
	})
}

// Handle POST /parametres — dispatch sur le champ action du formulaire
func (c *SettingsController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "edit_parametre":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "La clé et le type du paramètre sont requis", flash.SeverityError)
			return
		}
		err := c.service.Set(ctx.Request.Context(), actorID, req.Cle, req.Valeur, req.Type)
		if err == nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Paramètre enregistré avec succès", flash.SeveritySuccess)
			return
		}
		if message, ok := apperr.UserMessage(err); ok {
			c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
			return
		}
		c.logger.Error("mutation paramètre", zap.Error(err))
		c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}
