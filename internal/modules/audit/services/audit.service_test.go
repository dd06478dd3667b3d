package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeInserter struct {
	err     error
	entries []Entry
}

func (f *fakeInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.entries = append(f.entries, document.(Entry))
	return &mongo.InsertOneResult{}, nil
}

func TestRecordWritesEntry(t *testing.T) {
	col := &fakeInserter{}
	rec := NewRecorder(col, zap.NewNop())
	fixed := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	outcome := rec.Record(context.Background(), "usr-1", "Ajout du département « Informatique »", "departement")

	assert.True(t, outcome.Recorded)
	assert.NoError(t, outcome.Err)
	require.Len(t, col.entries, 1)
	entry := col.entries[0]
	assert.Equal(t, "usr-1", entry.UserID)
	assert.Equal(t, "Ajout du département « Informatique »", entry.Action)
	assert.Equal(t, "departement", entry.TableCible)
	assert.Equal(t, fixed, entry.CreatedAt)
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	cause := errors.New("mongo injoignable")
	rec := NewRecorder(&fakeInserter{err: cause}, zap.NewNop())

	outcome := rec.Record(context.Background(), "usr-1", "Suppression de la classe « L1 »", "classe")

	// l'échec est observable mais jamais propagé en erreur
	assert.False(t, outcome.Recorded)
	assert.ErrorIs(t, outcome.Err, cause)
}
