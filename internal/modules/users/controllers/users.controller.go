package controllers

import (
	"errors"
	"net/http"

	"isti-portal-core/internal/modules/users/dto"
	"isti-portal-core/internal/modules/users/services"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const pageURL = "/utilisateurs"

type UsersController struct {
	service *services.UsersService
	flash   *flash.Flash
	logger  *zap.Logger
}

func NewUsersController(service *services.UsersService, fl *flash.Flash, logger *zap.Logger) *UsersController {
	return &UsersController{
		service: service,
		flash:   fl,
		logger:  logger,
	}
}

// List GET /utilisateurs
func (c *UsersController) List(ctx *gin.Context) {
	users, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("liste des utilisateurs", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"utilisateurs": users,
	})
}

// Lookup GET /api/v1/admin/utilisateurs/lookup?id= — alimente le panneau
// d'édition en AJAX, réponse JSON et non redirection
func (c *UsersController) Lookup(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Identifiant manquant",
		})
		return
	}

	user, err := c.service.Lookup(ctx.Request.Context(), id)
	if err != nil {
		if message, ok := apperr.UserMessage(err); ok {
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": message,
			})
			return
		}
		c.logger.Error("recherche d'utilisateur", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur de base de données",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Handle POST /utilisateurs — dispatch sur le champ action du formulaire
func (c *UsersController) Handle(ctx *gin.Context) {
	actorID := ctx.GetString("user_id")

	switch ctx.PostForm("action") {
	case "add_utilisateur":
		var req dto.AddRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, bindMessage(err), flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Create(ctx.Request.Context(), actorID, req), "Utilisateur ajouté avec succès")

	case "edit_utilisateur":
		var req dto.EditRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, bindMessage(err), flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Update(ctx.Request.Context(), actorID, req), "Utilisateur modifié avec succès")

	case "delete_utilisateur":
		var req dto.DeleteRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Utilisateur invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Delete(ctx.Request.Context(), actorID, req.ID), "Utilisateur supprimé avec succès")

	case "toggle_utilisateur":
		var req dto.ToggleRequest
		if err := ctx.ShouldBind(&req); err != nil {
			c.flash.RedirectWithMessage(ctx, pageURL, "Utilisateur invalide", flash.SeverityError)
			return
		}
		c.finish(ctx, c.service.Toggle(ctx.Request.Context(), actorID, req.ID), "Statut du compte mis à jour")

	default:
		c.flash.RedirectWithMessage(ctx, pageURL, "Action inconnue", flash.SeverityError)
	}
}

func (c *UsersController) finish(ctx *gin.Context, err error, successMessage string) {
	if err == nil {
		c.flash.RedirectWithMessage(ctx, pageURL, successMessage, flash.SeveritySuccess)
		return
	}

	if message, ok := apperr.UserMessage(err); ok {
		c.flash.RedirectWithMessage(ctx, pageURL, message, flash.SeverityError)
		return
	}

	c.logger.Error("mutation utilisateur", zap.Error(err))
	c.flash.RedirectWithMessage(ctx, pageURL, "Erreur de base de données", flash.SeverityError)
}

// bindMessage traduit la première erreur de validation du formulaire en
// message français, champ par champ
func bindMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Formulaire invalide"
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Nom":
		return "Le nom est requis"
	case "Email":
		if fe.Tag() == "email" {
			return "L'adresse email est invalide"
		}
		return "L'adresse email est requise"
	case "MotDePasse":
		if fe.Tag() == "min" {
			return "Le mot de passe doit contenir au moins 8 caractères"
		}
		return "Le mot de passe est requis"
	case "Roles":
		return "Au moins un rôle doit être sélectionné"
	case "ID":
		return "Utilisateur invalide"
	}
	return "Formulaire invalide"
}
