package services

import (
	"testing"

	"isti-portal-core/internal/modules/remontees/dto"

	"github.com/stretchr/testify/assert"
)

func TestTransitionsOnlyMoveForward(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{dto.StatutNouvelle, dto.StatutEnCours, true},
		{dto.StatutEnCours, dto.StatutResolue, true},
		{dto.StatutNouvelle, dto.StatutResolue, false},
		{dto.StatutEnCours, dto.StatutNouvelle, false},
		{dto.StatutResolue, dto.StatutEnCours, false},
		{dto.StatutResolue, dto.StatutNouvelle, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, transitions[tc.from] == tc.to,
			"transition %s → %s", tc.from, tc.to)
	}
}
