package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("resp_classe")
	require.NoError(t, err)
	assert.Equal(t, RoleRespClasse, r)

	_, err = ParseRole("super_admin")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestParseSetRejectsUnknownRole(t *testing.T) {
	_, err := ParseSet([]string{"admin", "pirate"})
	assert.Error(t, err)
}

func TestParseSetDeduplicates(t *testing.T) {
	set, err := ParseSet([]string{"admin", "admin", "etudiant"})
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Has(RoleAdmin))
	assert.True(t, set.Has(RoleEtudiant))
}

func TestHasOnNilSet(t *testing.T) {
	var set Set
	assert.False(t, set.Has(RoleAdmin))
	assert.False(t, set.HasAny(RoleAdmin, RoleEtudiant))
}

func TestHasAny(t *testing.T) {
	set := NewSet(RoleEnseignant)
	assert.True(t, set.HasAny(RoleAdmin, RoleEnseignant))
	assert.False(t, set.HasAny(RoleAdmin, RoleEtudiant))
}

func TestStringsDeterministicOrder(t *testing.T) {
	set := NewSet(RoleEtudiant, RoleAdmin, RoleRespClasse)
	first := set.Strings()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, set.Strings())
	}
	assert.Equal(t, []string{"admin", "resp_classe", "etudiant"}, first)
}
