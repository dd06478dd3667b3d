package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"isti-portal-core/internal/modules/annees/dto"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/shared/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestParseDatesValid(t *testing.T) {
	debut, fin, err := ParseDates("2024-10-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), debut)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), fin)
}

func TestParseDatesRejectsBadFormat(t *testing.T) {
	_, _, err := ParseDates("01/10/2024", "2025-06-30")
	require.Error(t, err)
	_, ok := apperr.UserMessage(err)
	assert.True(t, ok)

	_, _, err = ParseDates("2024-10-01", "30 juin 2025")
	assert.Error(t, err)
}

func TestParseDatesRejectsEndBeforeStart(t *testing.T) {
	_, _, err := ParseDates("2025-06-30", "2024-10-01")
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Contains(t, message, "date de fin doit être postérieure à la date de début")
}

func TestParseDatesRejectsEqualDates(t *testing.T) {
	_, _, err := ParseDates("2024-10-01", "2024-10-01")
	assert.Error(t, err)
}

type fakeRow struct {
	vals []interface{}
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		if d, ok := dest[i].(*bool); ok {
			*d = r.vals[i].(bool)
		}
	}
	return nil
}

// fakeDB sert le contrôle d'unicité du libellé et simule l'UPDATE
type fakeDB struct {
	libelleExists bool
	affected      int64
}

func (d *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("Query inattendu")
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if strings.Contains(sql, "EXISTS") {
		return &fakeRow{vals: []interface{}{d.libelleExists}}
	}
	return &fakeRow{err: pgx.ErrNoRows}
}

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) error {
	return nil
}

func (d *fakeDB) ExecAffected(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	return d.affected, nil
}

type recordingInserter struct {
	docs []interface{}
}

func (r *recordingInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	r.docs = append(r.docs, document)
	return &mongo.InsertOneResult{}, nil
}

func TestUpdateUnknownAnneeRejectedWithoutAudit(t *testing.T) {
	inserter := &recordingInserter{}
	svc := &AnneesService{
		db:    &fakeDB{affected: 0},
		audit: auditsvc.NewRecorder(inserter, zap.NewNop()),
	}

	err := svc.Update(context.Background(), "admin-1", dto.EditRequest{
		ID:        "introuvable",
		Libelle:   "2024/2025",
		DateDebut: "2024-10-01",
		DateFin:   "2025-06-30",
	})
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Année académique introuvable", message)
	assert.Empty(t, inserter.docs)
}
