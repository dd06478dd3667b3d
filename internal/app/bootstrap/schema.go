package bootstrap

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"

	"go.uber.org/zap"
)

// Le schéma est volontairement sans contraintes FK entre entités : les
// invariants référentiels sont portés par l'application (vérificateur
// d'intégrité avant suppression), comme le reste des règles métier.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS utilisateur (
	id             TEXT PRIMARY KEY,
	matricule      TEXT NOT NULL UNIQUE,
	nom            TEXT NOT NULL,
	email          TEXT NOT NULL UNIQUE,
	mot_de_passe   TEXT NOT NULL,
	telephone      TEXT,
	photo_url      TEXT,
	date_naissance DATE,
	est_actif      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS utilisateur_role (
	utilisateur_id TEXT NOT NULL,
	role           TEXT NOT NULL,
	PRIMARY KEY (utilisateur_id, role)
);

CREATE TABLE IF NOT EXISTS departement (
	id             TEXT PRIMARY KEY,
	nom            TEXT NOT NULL,
	responsable_id TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS filiere (
	id             TEXT PRIMARY KEY,
	nom            TEXT NOT NULL,
	departement_id TEXT NOT NULL,
	responsable_id TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS classe (
	id             TEXT PRIMARY KEY,
	niveau         TEXT NOT NULL,
	filiere_id     TEXT NOT NULL,
	responsable_id TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS annee_academique (
	id         TEXT PRIMARY KEY,
	libelle    TEXT NOT NULL,
	date_debut DATE NOT NULL,
	date_fin   DATE NOT NULL,
	est_active BOOLEAN NOT NULL DEFAULT FALSE,
	created_by TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS inscription (
	id               TEXT PRIMARY KEY,
	classe_id        TEXT NOT NULL,
	etudiant_id      TEXT NOT NULL,
	annee_academique TEXT NOT NULL,
	date_inscription DATE NOT NULL DEFAULT CURRENT_DATE,
	statut           TEXT NOT NULL DEFAULT 'inscrit',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS enseignement (
	id            TEXT PRIMARY KEY,
	classe_id     TEXT NOT NULL,
	enseignant_id TEXT NOT NULL,
	matiere       TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS emploi_temps (
	id          TEXT PRIMARY KEY,
	classe_id   TEXT NOT NULL,
	jour        TEXT NOT NULL,
	heure_debut TIME NOT NULL,
	heure_fin   TIME NOT NULL,
	matiere     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS evenement (
	id             TEXT PRIMARY KEY,
	classe_id      TEXT NOT NULL,
	titre          TEXT NOT NULL,
	date_evenement DATE NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS parametre (
	cle         TEXT PRIMARY KEY,
	valeur      TEXT NOT NULL,
	type        TEXT NOT NULL,
	categorie   TEXT,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS remontee (
	id          TEXT PRIMARY KEY,
	classe_id   TEXT NOT NULL,
	etudiant_id TEXT NOT NULL,
	sujet       TEXT NOT NULL,
	description TEXT NOT NULL,
	statut      TEXT NOT NULL DEFAULT 'nouvelle',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS note (
	id          TEXT PRIMARY KEY,
	etudiant_id TEXT NOT NULL,
	classe_id   TEXT NOT NULL,
	matiere     TEXT NOT NULL,
	valeur      NUMERIC(5,2) NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS presence (
	id          TEXT PRIMARY KEY,
	etudiant_id TEXT NOT NULL,
	classe_id   TEXT NOT NULL,
	date_seance DATE NOT NULL,
	est_present BOOLEAN NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_inscription_classe ON inscription (classe_id);
CREATE INDEX IF NOT EXISTS idx_inscription_annee ON inscription (annee_academique);
CREATE INDEX IF NOT EXISTS idx_note_etudiant ON note (etudiant_id, classe_id);
CREATE INDEX IF NOT EXISTS idx_presence_etudiant ON presence (etudiant_id, classe_id);
`

// SchemaManager applique le DDL embarqué au démarrage
type SchemaManager struct {
	db     *postgres.Client
	logger *zap.Logger
}

func NewSchemaManager(db *postgres.Client, logger *zap.Logger) *SchemaManager {
	return &SchemaManager{db: db, logger: logger}
}

func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	if err := m.db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("application du schéma: %w", err)
	}
	m.logger.Info("schéma Postgres vérifié")
	return nil
}
