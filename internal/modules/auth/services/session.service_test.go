package services

import (
	"context"
	"testing"
	"time"

	redisInfra "isti-portal-core/internal/infrastructure/database/redis"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeRedis ne stubbe que les commandes utilisées par DeleteSession ;
// toute autre commande panique via l'interface embarquée.
type fakeRedis struct {
	redis.Cmdable
	hashes  map[string]map[string]string
	deleted []string
	srems   map[string][]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		hashes: map[string]map[string]string{},
		srems:  map[string][]string{},
	}
}

func (f *fakeRedis) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	cmd := redis.NewMapStringStringCmd(ctx)
	cmd.SetVal(f.hashes[key])
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func (f *fakeRedis) SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	for _, m := range members {
		f.srems[key] = append(f.srems[key], m.(string))
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(members)))
	return cmd
}

func newTestSessionService(rdb redis.Cmdable) *SessionService {
	return &SessionService{
		rdb:  rdb,
		keys: redisInfra.NewKeyGenerator("test"),
		ttl:  time.Hour,
	}
}

func TestDeleteSessionRemovesTokenFromUserIndex(t *testing.T) {
	rdb := newFakeRedis()
	svc := newTestSessionService(rdb)
	sessionKey := svc.keys.SessionKey("tok-1")
	rdb.hashes[sessionKey] = map[string]string{
		"user_id": "user-1",
		"nom":     "Jean Dupont",
	}

	svc.DeleteSession(context.Background(), "tok-1")

	assert.Equal(t, []string{sessionKey}, rdb.deleted)
	assert.Equal(t, []string{"tok-1"}, rdb.srems[svc.keys.UserSessionsKey("user-1")])
}

func TestDeleteSessionExpiredTokenStillDeletesKey(t *testing.T) {
	rdb := newFakeRedis()
	svc := newTestSessionService(rdb)

	// hash déjà expiré : pas de user_id à relire
	svc.DeleteSession(context.Background(), "tok-expire")

	assert.Equal(t, []string{svc.keys.SessionKey("tok-expire")}, rdb.deleted)
	assert.Empty(t, rdb.srems)
}
