package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/departements/dto"
	"isti-portal-core/internal/shared/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeRow struct {
	vals []interface{}
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *bool:
			*d = r.vals[i].(bool)
		case *string:
			*d = r.vals[i].(string)
		}
	}
	return nil
}

// fakeDB sert les vérifications d'unicité et enregistre les écritures
type fakeDB struct {
	nomExists bool
	affected  int64
	execs     []string
}

func (d *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("Query inattendu")
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if strings.Contains(sql, "EXISTS") {
		return &fakeRow{vals: []interface{}{d.nomExists}}
	}
	return &fakeRow{err: pgx.ErrNoRows}
}

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) error {
	d.execs = append(d.execs, sql)
	return nil
}

func (d *fakeDB) ExecAffected(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	d.execs = append(d.execs, sql)
	return d.affected, nil
}

type recordingInserter struct {
	docs []interface{}
}

func (r *recordingInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	r.docs = append(r.docs, document)
	return &mongo.InsertOneResult{}, nil
}

func newTestService(db *fakeDB) (*DepartementsService, *recordingInserter) {
	inserter := &recordingInserter{}
	svc := &DepartementsService{
		db:    db,
		audit: auditsvc.NewRecorder(inserter, zap.NewNop()),
	}
	return svc, inserter
}

func TestUpdateUnknownDepartementRejectedWithoutAudit(t *testing.T) {
	db := &fakeDB{affected: 0}
	svc, inserter := newTestService(db)

	err := svc.Update(context.Background(), "admin-1", dto.EditRequest{
		ID:  "introuvable",
		Nom: "Informatique",
	})
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Département introuvable", message)
	assert.Empty(t, inserter.docs)
}

func TestUpdateExistingDepartementAudits(t *testing.T) {
	db := &fakeDB{affected: 1}
	svc, inserter := newTestService(db)

	err := svc.Update(context.Background(), "admin-1", dto.EditRequest{
		ID:  "dep-1",
		Nom: "Informatique",
	})
	require.NoError(t, err)
	require.Len(t, inserter.docs, 1)

	entry, ok := inserter.docs[0].(auditsvc.Entry)
	require.True(t, ok)
	assert.Equal(t, "departement", entry.TableCible)
	assert.Contains(t, entry.Action, "Informatique")
}

func TestUpdateDuplicateNomRejected(t *testing.T) {
	db := &fakeDB{nomExists: true}
	svc, inserter := newTestService(db)

	err := svc.Update(context.Background(), "admin-1", dto.EditRequest{
		ID:  "dep-1",
		Nom: "Informatique",
	})
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Contains(t, message, "existe déjà")
	assert.Empty(t, db.execs)
	assert.Empty(t, inserter.docs)
}
