package dto

import (
	"time"

	"isti-portal-core/internal/shared/rbac"
)

// LoginRequest formulaire de connexion
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"mot_de_passe" binding:"required"`
}

// SessionData contenu du hash de session Redis. Les rôles sont chargés à
// la connexion et ne sont pas relus en base pendant la vie de la session.
type SessionData struct {
	UserID    string
	Nom       string
	Email     string
	Roles     rbac.Set
	CreatedAt time.Time
	ExpiresAt time.Time
}

// AuthError erreur d'authentification typée, libellé utilisateur en français
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}
