package controllers

import (
	"errors"
	"testing"

	"isti-portal-core/internal/modules/users/dto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, req interface{}) error {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(req)
	require.Error(t, err)
	return err
}

func TestBindMessageMissingNom(t *testing.T) {
	err := validate(t, dto.AddRequest{
		Email:      "jean@isti.edu",
		MotDePasse: "motdepasse",
		Roles:      []string{"etudiant"},
	})
	assert.Equal(t, "Le nom est requis", bindMessage(err))
}

func TestBindMessageInvalidEmail(t *testing.T) {
	err := validate(t, dto.AddRequest{
		Nom:        "Jean Dupont",
		Email:      "pas-un-email",
		MotDePasse: "motdepasse",
		Roles:      []string{"etudiant"},
	})
	assert.Equal(t, "L'adresse email est invalide", bindMessage(err))
}

func TestBindMessageShortPassword(t *testing.T) {
	err := validate(t, dto.AddRequest{
		Nom:        "Jean Dupont",
		Email:      "jean@isti.edu",
		MotDePasse: "court",
		Roles:      []string{"etudiant"},
	})
	assert.Equal(t, "Le mot de passe doit contenir au moins 8 caractères", bindMessage(err))
}

func TestBindMessageNoRoles(t *testing.T) {
	err := validate(t, dto.AddRequest{
		Nom:        "Jean Dupont",
		Email:      "jean@isti.edu",
		MotDePasse: "motdepasse",
	})
	assert.Equal(t, "Au moins un rôle doit être sélectionné", bindMessage(err))
}

func TestBindMessageNonValidationError(t *testing.T) {
	assert.Equal(t, "Formulaire invalide", bindMessage(errors.New("EOF")))
}
