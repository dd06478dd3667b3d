package services

import (
	"context"
	"strings"
	"time"

	redisInfra "isti-portal-core/internal/infrastructure/database/redis"
	"isti-portal-core/internal/modules/auth/dto"
	"isti-portal-core/internal/shared/flash"
	"isti-portal-core/internal/shared/rbac"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionService gère les sessions utilisateur dans Redis : hash par
// token avec identité, rôles et flash, expiration portée par le TTL Redis.
type SessionService struct {
	rdb  redis.Cmdable
	keys *redisInfra.KeyGenerator
	ttl  time.Duration
}

func NewSessionService(redisClient *redisInfra.Client, ttl time.Duration) *SessionService {
	return &SessionService{
		rdb:  redisClient.Client(),
		keys: redisClient.Keys(),
		ttl:  ttl,
	}
}

// CreateSession crée la session et retourne son token
func (s *SessionService) CreateSession(ctx context.Context, userID, nom, email string, roles rbac.Set) (string, error) {
	token := uuid.New().String()
	now := time.Now()

	key := s.keys.SessionKey(token)
	fields := map[string]interface{}{
		"user_id":    userID,
		"nom":        nom,
		"email":      email,
		"roles":      strings.Join(roles.Strings(), ","),
		"created_at": now.Format(time.RFC3339),
		"expires_at": now.Add(s.ttl).Format(time.RFC3339),
	}

	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	pipe.SAdd(ctx, s.keys.UserSessionsKey(userID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", dto.NewAuthError("SESSION_CREATE_FAILED", "Impossible de créer la session")
	}

	return token, nil
}

// GetSession récupère et valide la session d'un token
func (s *SessionService) GetSession(ctx context.Context, token string) (*dto.SessionData, error) {
	if token == "" {
		return nil, dto.NewAuthError("TOKEN_REQUIRED", "Veuillez vous connecter")
	}

	fields, err := s.rdb.HGetAll(ctx, s.keys.SessionKey(token)).Result()
	if err != nil || len(fields) == 0 {
		return nil, dto.NewAuthError("SESSION_NOT_FOUND", "Session invalide ou expirée")
	}

	roles, err := rbac.ParseSet(splitRoles(fields["roles"]))
	if err != nil {
		return nil, dto.NewAuthError("SESSION_CORRUPTED", "Session invalide ou expirée")
	}

	createdAt, _ := time.Parse(time.RFC3339, fields["created_at"])
	expiresAt, _ := time.Parse(time.RFC3339, fields["expires_at"])

	return &dto.SessionData{
		UserID:    fields["user_id"],
		Nom:       fields["nom"],
		Email:     fields["email"],
		Roles:     roles,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

// DeleteSession supprime la session de manière idempotente : la
// déconnexion réussit toujours, même sur un token déjà expiré. Le
// user_id est relu depuis le hash pour retirer le token de l'index
// user_sessions, qui ne porte pas de TTL.
func (s *SessionService) DeleteSession(ctx context.Context, token string) {
	key := s.keys.SessionKey(token)
	fields, _ := s.rdb.HGetAll(ctx, key).Result()

	s.rdb.Del(ctx, key)
	if userID := fields["user_id"]; userID != "" {
		s.rdb.SRem(ctx, s.keys.UserSessionsKey(userID), token)
	}
}

// SetFlash pose le message flash dans le hash de session
func (s *SessionService) SetFlash(ctx context.Context, token, message, severity string) error {
	key := s.keys.SessionKey(token)
	return s.rdb.HSet(ctx, key, map[string]interface{}{
		flash.KeyMessage: message,
		flash.KeyType:    severity,
	}).Err()
}

// ConsumeFlash lit puis efface le message flash
func (s *SessionService) ConsumeFlash(ctx context.Context, token string) (string, string, error) {
	key := s.keys.SessionKey(token)

	values, err := s.rdb.HMGet(ctx, key, flash.KeyMessage, flash.KeyType).Result()
	if err != nil && err != redis.Nil {
		return "", "", err
	}

	message, severity := "", ""
	if len(values) == 2 {
		if v, ok := values[0].(string); ok {
			message = v
		}
		if v, ok := values[1].(string); ok {
			severity = v
		}
	}

	if message != "" {
		s.rdb.HDel(ctx, key, flash.KeyMessage, flash.KeyType)
	}

	return message, severity, nil
}

func splitRoles(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}
