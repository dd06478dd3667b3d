package controllers

import (
	"net/http"

	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/modules/auth/dto"
	"isti-portal-core/internal/modules/auth/services"
	"isti-portal-core/internal/shared/flash"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service    *services.AuthService
	flash      *flash.Flash
	cookieName string
	cookieTTL  int
}

func NewAuthController(service *services.AuthService, fl *flash.Flash, cfg *config.Config) *AuthController {
	return &AuthController{
		service:    service,
		flash:      fl,
		cookieName: cfg.Session.CookieName,
		cookieTTL:  int(cfg.Session.TTL.Seconds()),
	}
}

// Login POST /connexion — formulaire email + mot_de_passe
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.flash.RedirectWithMessage(ctx, "/connexion", "Email et mot de passe sont requis", flash.SeverityError)
		return
	}

	token, _, err := c.service.Login(ctx.Request.Context(), req)
	if err != nil {
		if authErr, ok := err.(*dto.AuthError); ok {
			c.flash.RedirectWithMessage(ctx, "/connexion", authErr.Message, flash.SeverityError)
			return
		}
		c.flash.RedirectWithMessage(ctx, "/connexion", "Erreur de base de données", flash.SeverityError)
		return
	}

	ctx.SetCookie(c.cookieName, token, c.cookieTTL, "/", "", false, true)
	c.flash.RedirectWithMessage(ctx, "/", "Connexion réussie", flash.SeveritySuccess)
}

// Logout POST /deconnexion — idempotent, réussit toujours
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(c.cookieName)
	if token != "" {
		c.service.Logout(ctx.Request.Context(), token)
	}

	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/connexion")
}

// Me GET /moi — identité de la session courante, pour la couche de rendu
func (c *AuthController) Me(ctx *gin.Context) {
	session := authmw.CurrentSession(ctx)
	if session == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Non connecté"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    session.UserID,
			"nom":   session.Nom,
			"email": session.Email,
			"roles": session.Roles.Strings(),
		},
	})
}

// FlashMessage GET /flash — lit et efface le flash courant (rendu des pages)
func (c *AuthController) FlashMessage(ctx *gin.Context) {
	message, severity := c.flash.Consume(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"alert_message": message,
		"alert_type":    severity,
	})
}
