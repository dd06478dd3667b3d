package bootstrap

import (
	"context"
	"fmt"
	"time"

	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/infrastructure/database/postgres"
	usersvc "isti-portal-core/internal/modules/users/services"
	"isti-portal-core/internal/shared/rbac"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// defaultSettings paramètres créés au premier démarrage, jamais écrasés
var defaultSettings = []struct {
	Cle         string
	Valeur      string
	Type        string
	Categorie   string
	Description string
}{
	{"nom_etablissement", "Institut Supérieur de Technologie et d'Innovation", "string", "general", "Nom affiché sur le portail"},
	{"email_contact", "contact@isti.edu", "string", "general", "Adresse de contact de l'administration"},
	{"inscription_ouverte", "true", "boolean", "scolarite", "Autorise les nouvelles inscriptions"},
	{"capacite_classe_defaut", "40", "integer", "scolarite", "Capacité par défaut d'une classe"},
}

// SeedingManager crée les données initiales : paramètres par défaut et
// compte administrateur
type SeedingManager struct {
	db     *postgres.Client
	tx     *postgres.TransactionManager
	cfg    *config.Config
	logger *zap.Logger
}

func NewSeedingManager(db *postgres.Client, tx *postgres.TransactionManager, cfg *config.Config, logger *zap.Logger) *SeedingManager {
	return &SeedingManager{db: db, tx: tx, cfg: cfg, logger: logger}
}

func (m *SeedingManager) Seed(ctx context.Context) error {
	if err := m.seedSettings(ctx); err != nil {
		return err
	}
	return m.seedAdmin(ctx)
}

func (m *SeedingManager) seedSettings(ctx context.Context) error {
	const insert = `
		INSERT INTO parametre (cle, valeur, type, categorie, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (cle) DO NOTHING
	`
	for _, s := range defaultSettings {
		if err := m.db.Exec(ctx, insert, s.Cle, s.Valeur, s.Type, s.Categorie, s.Description); err != nil {
			return fmt.Errorf("paramètre par défaut %s: %w", s.Cle, err)
		}
	}
	return nil
}

// seedAdmin crée le compte administrateur initial si aucun compte ne
// porte encore le rôle admin. Sans mot de passe configuré, rien n'est
// créé : le portail reste vide plutôt que d'embarquer un secret connu.
func (m *SeedingManager) seedAdmin(ctx context.Context) error {
	var count int
	if err := m.db.QueryRow(ctx, `SELECT COUNT(*) FROM utilisateur_role WHERE role = 'admin'`).Scan(&count); err != nil {
		return fmt.Errorf("recherche d'un admin existant: %w", err)
	}
	if count > 0 {
		return nil
	}

	if m.cfg.Seed.AdminPassword == "" {
		m.logger.Warn("aucun compte admin et SEED_ADMIN_PASSWORD absent, seed ignoré")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(m.cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hachage du mot de passe admin: %w", err)
	}

	id := uuid.New().String()
	matricule := usersvc.FormatMatricule(time.Now().Year(), 1)

	err = m.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO utilisateur (id, matricule, nom, email, mot_de_passe, est_actif, created_at, updated_at)
			VALUES ($1, $2, 'Administrateur', $3, $4, TRUE, NOW(), NOW())
		`, id, matricule, m.cfg.Seed.AdminEmail, string(hash)); err != nil {
			return fmt.Errorf("création du compte admin: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO utilisateur_role (utilisateur_id, role) VALUES ($1, $2)
		`, id, rbac.RoleAdmin.String()); err != nil {
			return fmt.Errorf("rôle du compte admin: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("compte administrateur initial créé",
		zap.String("email", m.cfg.Seed.AdminEmail),
		zap.String("matricule", matricule))
	return nil
}
