package auth

import (
	"isti-portal-core/internal/shared/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Stack pile des middlewares d'accès appliquée aux groupes de routes
type Stack struct {
	Session *SessionMiddleware
	Role    *RoleMiddleware
}

func NewStack(session *SessionMiddleware, role *RoleMiddleware) *Stack {
	return &Stack{
		Session: session,
		Role:    role,
	}
}

// Protected authentification seule
func Protected(stack *Stack) []gin.HandlerFunc {
	return []gin.HandlerFunc{stack.Session.Handler()}
}

// RequireRole authentification + rôle précis
func RequireRole(stack *Stack, role rbac.Role) []gin.HandlerFunc {
	return append(Protected(stack), stack.Role.RequireRole(role))
}

// RequireAnyRole authentification + au moins un des rôles
func RequireAnyRole(stack *Stack, roles ...rbac.Role) []gin.HandlerFunc {
	return append(Protected(stack), stack.Role.RequireAnyRole(roles...))
}

// RequireAdmin raccourci du cas le plus fréquent : toutes les mutations
// d'entités passent derrière ce garde.
func RequireAdmin(stack *Stack) []gin.HandlerFunc {
	return RequireRole(stack, rbac.RoleAdmin)
}

var Module = fx.Options(
	fx.Provide(NewRoleMiddleware),
	fx.Provide(NewStack),
)
