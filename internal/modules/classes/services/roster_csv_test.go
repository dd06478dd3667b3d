package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"isti-portal-core/internal/modules/classes/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoster() []dto.RosterRow {
	naissance := time.Date(2004, 7, 3, 0, 0, 0, 0, time.UTC)
	return []dto.RosterRow{
		{
			Matricule:       "ISTI-2024-0001",
			Nom:             "Aké Florence",
			Email:           "florence.ake@isti.edu",
			Telephone:       "0708091011",
			DateNaissance:   &naissance,
			DateInscription: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			Statut:          "inscrit",
			NbNotes:         6,
			Moyenne:         12.5,
			TauxPresence:    87.5,
		},
		{
			Matricule:       "ISTI-2024-0002",
			Nom:             "Koné Ibrahim",
			Email:           "ibrahim.kone@isti.edu",
			DateInscription: time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC),
			Statut:          "inscrit",
		},
	}
}

func TestRenderRosterCSVStartsWithBOM(t *testing.T) {
	out, err := RenderRosterCSV(sampleRoster())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
}

func TestRenderRosterCSVContent(t *testing.T) {
	out, err := RenderRosterCSV(sampleRoster())
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}))))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Matricule", records[0][0])
	assert.Equal(t, "Taux de présence (%)", records[0][9])

	// dates en j/m/A, moyennes à deux décimales, présence à une
	assert.Equal(t, []string{
		"ISTI-2024-0001", "Aké Florence", "florence.ake@isti.edu", "0708091011",
		"03/07/2004", "01/10/2024", "inscrit", "6", "12.50", "87.5",
	}, records[1])

	// date de naissance absente : champ vide, valeurs numériques à zéro
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "0.00", records[2][8])
	assert.Equal(t, "0.0", records[2][9])
}

func TestRenderRosterCSVDeterministic(t *testing.T) {
	roster := sampleRoster()

	first, err := RenderRosterCSV(roster)
	require.NoError(t, err)
	second, err := RenderRosterCSV(roster)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderRosterCSVEmpty(t *testing.T) {
	out, err := RenderRosterCSV(nil)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}))))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
