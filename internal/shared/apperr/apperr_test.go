package apperr

import (
	"errors"
	"fmt"
	"testing"

	"isti-portal-core/internal/shared/integrity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMessageOnUserError(t *testing.T) {
	err := New("Un département nommé « %s » existe déjà", "Informatique")

	message, ok := UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Un département nommé « Informatique » existe déjà", message)
}

func TestUserMessageOnWrappedUserError(t *testing.T) {
	err := fmt.Errorf("création: %w", New("Email invalide"))

	message, ok := UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Email invalide", message)
}

func TestUserMessageOnBlockedError(t *testing.T) {
	err := fmt.Errorf("suppression: %w", &integrity.BlockedError{
		Entity:   integrity.EntityDepartement,
		Relation: "filière(s)",
		Count:    2,
	})

	message, ok := UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "impossible de supprimer : contient 2 filière(s)", message)
}

func TestUserMessageHidesInternalErrors(t *testing.T) {
	// les erreurs techniques ne doivent jamais atteindre l'utilisateur
	_, ok := UserMessage(errors.New(`pq: duplicate key value violates unique constraint "utilisateur_email_key"`))
	assert.False(t, ok)
}
