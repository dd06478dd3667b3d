package services

import (
	"context"
	"errors"
	"testing"
	"time"

	auditsvc "isti-portal-core/internal/modules/audit/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// fakeStore compte les chargements pour observer les rechargements du cache
type fakeStore struct {
	entries []Entry
	loads   int
	err     error
}

func (s *fakeStore) LoadAll(ctx context.Context) ([]Entry, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *fakeStore) Upsert(ctx context.Context, cle, valeur, typ string) error {
	for i, e := range s.entries {
		if e.Cle == cle {
			s.entries[i].Valeur = valeur
			s.entries[i].Type = typ
			return nil
		}
	}
	s.entries = append(s.entries, Entry{Cle: cle, Valeur: valeur, Type: typ})
	return nil
}

type noopInserter struct{}

func (noopInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return &mongo.InsertOneResult{}, nil
}

type countingInserter struct {
	count int
}

func (c *countingInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	c.count++
	return &mongo.InsertOneResult{}, nil
}

func newTestService(store Store, ttl time.Duration) (*Service, *time.Time) {
	current := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := &Service{
		store:  store,
		audit:  auditsvc.NewRecorder(noopInserter{}, zap.NewNop()),
		logger: zap.NewNop(),
		ttl:    ttl,
		now:    func() time.Time { return current },
	}
	return svc, &current
}

func TestGetTypedValues(t *testing.T) {
	store := &fakeStore{entries: []Entry{
		{Cle: "nom_etablissement", Valeur: "ISTI", Type: TypeString},
		{Cle: "capacite_classe_defaut", Valeur: "40", Type: TypeInteger},
		{Cle: "inscription_ouverte", Valeur: "true", Type: TypeBoolean},
	}}
	svc, _ := newTestService(store, 5*time.Minute)
	ctx := context.Background()

	assert.Equal(t, "ISTI", svc.GetString(ctx, "nom_etablissement", "defaut"))
	assert.Equal(t, 40, svc.GetInt(ctx, "capacite_classe_defaut", 0))
	assert.True(t, svc.GetBool(ctx, "inscription_ouverte", false))

	// clé absente : valeur par défaut
	assert.Equal(t, "x", svc.GetString(ctx, "inexistante", "x"))
	assert.Equal(t, 7, svc.GetInt(ctx, "inexistante", 7))
}

func TestGetWrongTypeFallsBackToDefault(t *testing.T) {
	store := &fakeStore{entries: []Entry{
		{Cle: "capacite", Valeur: "beaucoup", Type: TypeInteger},
	}}
	svc, _ := newTestService(store, 5*time.Minute)

	assert.Equal(t, 30, svc.GetInt(context.Background(), "capacite", 30))
}

func TestCacheIsReusedWithinTTL(t *testing.T) {
	store := &fakeStore{entries: []Entry{{Cle: "a", Valeur: "1", Type: TypeString}}}
	svc, clock := newTestService(store, 5*time.Minute)
	ctx := context.Background()

	svc.GetString(ctx, "a", "")
	*clock = clock.Add(4 * time.Minute)
	svc.GetString(ctx, "a", "")

	assert.Equal(t, 1, store.loads)
}

func TestCacheReloadsAfterTTL(t *testing.T) {
	store := &fakeStore{entries: []Entry{{Cle: "a", Valeur: "1", Type: TypeString}}}
	svc, clock := newTestService(store, 5*time.Minute)
	ctx := context.Background()

	svc.GetString(ctx, "a", "")
	store.entries[0].Valeur = "2"

	// juste avant expiration : ancienne valeur servie depuis le cache
	*clock = clock.Add(5 * time.Minute)
	assert.Equal(t, "1", svc.GetString(ctx, "a", ""))

	// au-delà du TTL : rechargement
	*clock = clock.Add(time.Second)
	assert.Equal(t, "2", svc.GetString(ctx, "a", ""))
	assert.Equal(t, 2, store.loads)
}

func TestSetReloadsSynchronously(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(store, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "usr-1", "email_contact", "scolarite@isti.edu", TypeString))

	// lecture immédiate sans attendre l'expiration du cache
	assert.Equal(t, "scolarite@isti.edu", svc.GetString(ctx, "email_contact", ""))
}

func TestSetRejectsInvalidValues(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(store, 5*time.Minute)
	ctx := context.Background()

	assert.Error(t, svc.Set(ctx, "usr-1", "capacite", "quarante", TypeInteger))
	assert.Error(t, svc.Set(ctx, "usr-1", "ouvert", "peut-etre", TypeBoolean))
	assert.Error(t, svc.Set(ctx, "usr-1", "options", "{invalide", TypeJSON))
	assert.Error(t, svc.Set(ctx, "usr-1", "cle", "v", "decimal"))

	// aucune écriture ne doit avoir eu lieu
	assert.Empty(t, store.entries)
}

func TestSetRejectedValueRecordsNoAudit(t *testing.T) {
	store := &fakeStore{}
	inserter := &countingInserter{}
	svc, _ := newTestService(store, 5*time.Minute)
	svc.audit = auditsvc.NewRecorder(inserter, zap.NewNop())
	ctx := context.Background()

	require.Error(t, svc.Set(ctx, "usr-1", "capacite", "quarante", TypeInteger))
	assert.Zero(t, inserter.count)
	assert.Empty(t, store.entries)

	// mutation acceptée : une seule ligne d'audit
	require.NoError(t, svc.Set(ctx, "usr-1", "capacite", "40", TypeInteger))
	assert.Equal(t, 1, inserter.count)
}

func TestInvalidateForcesReload(t *testing.T) {
	store := &fakeStore{entries: []Entry{{Cle: "a", Valeur: "1", Type: TypeString}}}
	svc, _ := newTestService(store, time.Hour)
	ctx := context.Background()

	svc.GetString(ctx, "a", "")
	svc.Invalidate()
	svc.GetString(ctx, "a", "")

	assert.Equal(t, 2, store.loads)
}

func TestLookupFailureReturnsDefault(t *testing.T) {
	store := &fakeStore{err: errors.New("connexion perdue")}
	svc, _ := newTestService(store, time.Minute)

	assert.Equal(t, "secours", svc.GetString(context.Background(), "a", "secours"))
}
