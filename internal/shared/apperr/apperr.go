package apperr

import (
	"errors"
	"fmt"

	"isti-portal-core/internal/shared/integrity"
)

// UserError erreur destinée à l'utilisateur : validation, unicité,
// conflit. Le message est en français et ne contient jamais de texte
// d'exception brut de la base de données.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func New(format string, args ...interface{}) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// UserMessage retourne le message à afficher si err est une erreur
// utilisateur (validation ou blocage d'intégrité). Sinon ok=false : le
// handler affiche un message générique et le détail part dans les logs.
func UserMessage(err error) (message string, ok bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message, true
	}

	var blocked *integrity.BlockedError
	if errors.As(err, &blocked) {
		return blocked.Error(), true
	}

	return "", false
}
