package auth

import (
	"isti-portal-core/internal/shared/flash"
	"isti-portal-core/internal/shared/rbac"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware contrôle d'autorisation par rôle. Les rôles sont des
// constantes rbac, jamais des chaînes libres. Session absente ou rôle
// manquant produisent le même résultat : redirection vers la connexion,
// aucun changement d'état observable.
type RoleMiddleware struct {
	flash *flash.Flash
}

func NewRoleMiddleware(fl *flash.Flash) *RoleMiddleware {
	return &RoleMiddleware{flash: fl}
}

// RequireRole exige un rôle précis
func (m *RoleMiddleware) RequireRole(role rbac.Role) gin.HandlerFunc {
	return m.RequireAnyRole(role)
}

// RequireAnyRole exige au moins un des rôles donnés
func (m *RoleMiddleware) RequireAnyRole(roles ...rbac.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.Roles.HasAny(roles...) {
			m.flash.RedirectWithMessage(c, "/connexion", "Accès non autorisé", flash.SeverityError)
			return
		}

		c.Next()
	}
}

// HasRole utilisable dans un handler pour un affichage conditionnel.
// Retourne false, jamais de panique, sur une requête non authentifiée.
func HasRole(c *gin.Context, role rbac.Role) bool {
	session := CurrentSession(c)
	if session == nil {
		return false
	}
	return session.Roles.Has(role)
}
