package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMatricule(t *testing.T) {
	assert.Equal(t, "ISTI-2025-0001", FormatMatricule(2025, 1))
	assert.Equal(t, "ISTI-2025-0042", FormatMatricule(2025, 42))
	assert.Equal(t, "ISTI-2024-9999", FormatMatricule(2024, 9999))
	// au-delà de 4 chiffres le matricule s'allonge sans écraser l'année
	assert.Equal(t, "ISTI-2025-10000", FormatMatricule(2025, 10000))
}

func TestMatriculePattern(t *testing.T) {
	assert.Equal(t, "ISTI-2025-%", MatriculePattern(2025))
}

func TestSplitRoles(t *testing.T) {
	assert.Equal(t, []string{}, splitRoles(""))
	assert.Equal(t, []string{"admin"}, splitRoles("admin"))
	assert.Equal(t, []string{"admin", "enseignant"}, splitRoles("admin,enseignant"))
}
