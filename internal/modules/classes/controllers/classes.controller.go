package controllers

import (
	"net/http"

	"isti-portal-core/internal/modules/classes/dto"
	"isti-portal-core/internal/modules/classes/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageURL = "/classes"

type ClassesController struct {
	service *services.ClassesService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewClassesController(service *services.ClassesService, fl *flash.Flash, logger *zap.Logger) *ClassesController {
	return &ClassesController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /classes
func (c *ClassesController) List(ctx *gin.Context) {
	classes, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des classes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"classes": classes,
	})
}

// Roster GET /classes/:id/inscrits?export=csv
// Par défaut JSON pour la couche de rendu ; export=csv déclenche le
// téléchargement de l'effectif.
func (c *ClassesController) Roster(ctx *gin.Context) {
	roster, err := c.service.Roster(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Error("effectif de la classe", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	if ctx.Query("export") == "csv" {
		body, err := services.RenderRosterCSV(roster)
		if err != nil {
			c.logger.Error("export CSV", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Erreur lors de la génération du fichier",
			})
			return
		}

		ctx.Header("Content-Disposition", `attachment; filename="effectif_classe.csv"`)
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"inscrits": roster,
	})
}

// Handle POST /classes — dispatch sur le champ action du formulaire
func (c *ClassesController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "add_classe":
		var req dto.AddRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le niveau et la filière sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Create(ctx.Request.Context(), actorID, req), "Classe ajoutée avec succès")

	case "edit_classe":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Le niveau et la filière sont requis", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Update(ctx.Request.Context(), actorID, req), "Classe modifiée avec succès")

	case "delete_classe":
		var req dto.DeleteRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Classe invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Delete(ctx.Request.Context(), actorID, req.ID), "Classe supprimée avec succès")

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}

func (c *ClassesController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation classe", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}
