package auth

import (
	"strings"

	"isti-portal-core/internal/modules/auth/dto"
	"isti-portal-core/internal/modules/auth/services"
	"isti-portal-core/internal/shared/flash"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionMiddleware garde d'authentification : toute page protégée passe
// ici avant d'exécuter la moindre logique. Échec = redirection vers la
// page de connexion avec un flash d'erreur, et arrêt net de la requête.
type SessionMiddleware struct {
	sessions   *services.SessionService
	flash      *flash.Flash
	cookieName string
}

func NewSessionMiddleware(sessions *services.SessionService, fl *flash.Flash, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		flash:      fl,
		cookieName: cookieName,
	}
}

func (m *SessionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.flash.RedirectWithMessage(c, "/connexion", "Veuillez vous connecter", flash.SeverityError)
			return
		}

		session, err := m.sessions.GetSession(c.Request.Context(), token)
		if err != nil {
			message := "Session invalide ou expirée"
			if authErr, ok := err.(*dto.AuthError); ok {
				message = authErr.Message
			}
			m.flash.RedirectWithMessage(c, "/connexion", message, flash.SeverityError)
			return
		}

		c.Set(sessionContextKey, session)
		c.Set("user_id", session.UserID)
		c.Set("session_token", token)

		c.Next()
	}
}

// extractToken cookie de session d'abord, en-tête Bearer en secours
// (endpoints AJAX)
func (m *SessionMiddleware) extractToken(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}

	return ""
}

// CurrentSession retourne la session injectée par le middleware, nil si
// la requête n'est pas authentifiée.
func CurrentSession(c *gin.Context) *dto.SessionData {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*dto.SessionData)
	if !ok {
		return nil
	}
	return session
}
