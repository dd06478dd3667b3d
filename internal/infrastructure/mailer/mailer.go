package mailer

import (
	"context"
	"net/http"

	"isti-portal-core/internal/app/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// Mailer canal email sortant. Les échecs d'envoi sont journalisés et
// retournent false, jamais une erreur au code appelant.
type Mailer struct {
	key     string
	from    *sgmail.Email
	enabled bool
	logger  *zap.Logger
}

func NewMailer(cfg *config.Config, logger *zap.Logger) *Mailer {
	return &Mailer{
		key:     cfg.Mail.SendgridKey,
		from:    sgmail.NewEmail(cfg.Mail.FromName, cfg.Mail.FromAddress),
		enabled: cfg.Mail.Enabled,
		logger:  logger,
	}
}

// SendEmail envoie un email HTML. Retourne true si l'API a accepté le
// message. Désactivé (MAIL_ENABLED=false), l'envoi est simplement tracé.
func (m *Mailer) SendEmail(ctx context.Context, to, toName, subject, htmlBody string) bool {
	if !m.enabled {
		m.logger.Debug("mail désactivé, envoi ignoré",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return false
	}

	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(toName, to))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/html", htmlBody))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		m.logger.Warn("échec envoi email", zap.String("to", to), zap.Error(err))
		return false
	}
	if res.StatusCode >= http.StatusBadRequest {
		m.logger.Warn("échec envoi email",
			zap.String("to", to),
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body),
		)
		return false
	}

	return true
}
