package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/modules/auth/dto"
	"isti-portal-core/internal/modules/auth/queries"
	"isti-portal-core/internal/shared/rbac"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	db       *postgres.Client
	sessions *SessionService
	logger   *zap.Logger
}

func NewAuthService(db *postgres.Client, sessions *SessionService, logger *zap.Logger) *AuthService {
	return &AuthService{
		db:       db,
		sessions: sessions,
		logger:   logger,
	}
}

// Login vérifie les identifiants puis ouvre une session avec l'ensemble
// des rôles de l'utilisateur. Le même message couvre email inconnu et mot
// de passe erroné.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (token string, session *dto.SessionData, err error) {
	var (
		userID       string
		nom          string
		email        string
		passwordHash string
		estActif     bool
	)

	err = s.db.QueryRow(ctx, queries.AuthQueries.GetUserByEmail, req.Email).
		Scan(&userID, &nom, &email, &passwordHash, &estActif)
	if err == pgx.ErrNoRows {
		return "", nil, dto.NewAuthError("INVALID_CREDENTIALS", "Email ou mot de passe incorrect")
	}
	if err != nil {
		return "", nil, fmt.Errorf("lecture utilisateur: %w", err)
	}

	if !estActif {
		return "", nil, dto.NewAuthError("ACCOUNT_DISABLED", "Ce compte est désactivé")
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		return "", nil, dto.NewAuthError("INVALID_CREDENTIALS", "Email ou mot de passe incorrect")
	}

	roles, err := s.loadRoles(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	token, err = s.sessions.CreateSession(ctx, userID, nom, email, roles)
	if err != nil {
		return "", nil, err
	}

	session, err = s.sessions.GetSession(ctx, token)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("connexion", zap.String("user_id", userID))
	return token, session, nil
}

// Logout ferme la session, toujours avec succès
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.sessions.DeleteSession(ctx, token)
}

func (s *AuthService) loadRoles(ctx context.Context, userID string) (rbac.Set, error) {
	rows, err := s.db.Query(ctx, queries.AuthQueries.GetUserRoles, userID)
	if err != nil {
		return nil, fmt.Errorf("lecture des rôles: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("lecture des rôles: %w", err)
		}
		values = append(values, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lecture des rôles: %w", err)
	}

	roles, err := rbac.ParseSet(values)
	if err != nil {
		// Un rôle inconnu en base est une corruption de données, pas un
		// cas utilisateur
		return nil, fmt.Errorf("rôles invalides pour %s: %w", userID, err)
	}

	return roles, nil
}
