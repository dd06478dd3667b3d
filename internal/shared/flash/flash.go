package flash

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sévérités du protocole de flash, lues par la couche de rendu
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Clés posées dans la session ; la page cible les lit puis les efface
const (
	KeyMessage = "alert_message"
	KeyType    = "alert_type"
)

// Store persiste le flash d'une session authentifiée (hash Redis)
type Store interface {
	SetFlash(ctx context.Context, token, message, severity string) error
	ConsumeFlash(ctx context.Context, token string) (message, severity string, err error)
}

type Flash struct {
	store      Store
	cookieName string
}

func New(store Store, cookieName string) *Flash {
	return &Flash{store: store, cookieName: cookieName}
}

// RedirectWithMessage pose alert_message/alert_type puis redirige en 303.
// Sans session (utilisateur non connecté), le flash passe par des cookies
// courts. L'échec d'écriture du flash ne bloque jamais la redirection.
func (f *Flash) RedirectWithMessage(c *gin.Context, url, message, severity string) {
	token, err := c.Cookie(f.cookieName)
	if err == nil && token != "" {
		if setErr := f.store.SetFlash(c.Request.Context(), token, message, severity); setErr == nil {
			c.Redirect(http.StatusSeeOther, url)
			c.Abort()
			return
		}
	}

	c.SetCookie(KeyMessage, message, 60, "/", "", false, true)
	c.SetCookie(KeyType, severity, 60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, url)
	c.Abort()
}

// Consume lit et efface le flash courant. Retourne des chaînes vides si
// aucun flash n'est présent.
func (f *Flash) Consume(c *gin.Context) (message, severity string) {
	token, err := c.Cookie(f.cookieName)
	if err == nil && token != "" {
		message, severity, err = f.store.ConsumeFlash(c.Request.Context(), token)
		if err == nil && message != "" {
			return message, severity
		}
	}

	message, _ = c.Cookie(KeyMessage)
	severity, _ = c.Cookie(KeyType)
	if message != "" {
		c.SetCookie(KeyMessage, "", -1, "/", "", false, true)
		c.SetCookie(KeyType, "", -1, "/", "", false, true)
	}
	return message, severity
}
