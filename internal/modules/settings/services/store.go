package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/modules/settings/queries"
)

// Types de valeur reconnus pour un paramètre
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeJSON    = "json"
)

// Entry un paramètre tel que stocké
type Entry struct {
	Cle         string `json:"cle"`
	Valeur      string `json:"valeur"`
	Type        string `json:"type"`
	Categorie   string `json:"categorie,omitempty"`
	Description string `json:"description,omitempty"`
}

// Store accès aux paramètres persistés. Séparé du cache pour pouvoir
// le remplacer en test.
type Store interface {
	LoadAll(ctx context.Context) ([]Entry, error)
	Upsert(ctx context.Context, cle, valeur, typ string) error
}

// PgStore implémentation Postgres du Store
type PgStore struct {
	db *postgres.Client
}

func NewPgStore(db *postgres.Client) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) LoadAll(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.Query(ctx, queries.SettingQueries.LoadAll)
	if err != nil {
		return nil, fmt.Errorf("chargement des paramètres: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Cle, &e.Valeur, &e.Type, &e.Categorie, &e.Description); err != nil {
			return nil, fmt.Errorf("chargement des paramètres: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *PgStore) Upsert(ctx context.Context, cle, valeur, typ string) error {
	if err := s.db.Exec(ctx, queries.SettingQueries.Upsert, cle, valeur, typ); err != nil {
		return fmt.Errorf("enregistrement du paramètre %s: %w", cle, err)
	}
	return nil
}
