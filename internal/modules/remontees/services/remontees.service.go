package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/remontees/dto"
	"isti-portal-core/internal/modules/remontees/queries"
	"isti-portal-core/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// transitions autorisées du statut : nouvelle → en_cours → resolue
var transitions = map[string]string{
	dto.StatutNouvelle: dto.StatutEnCours,
	dto.StatutEnCours:  dto.StatutResolue,
}

type RemonteesService struct {
	db    *postgres.Client
	audit *auditsvc.Recorder
}

func NewRemonteesService(db *postgres.Client, audit *auditsvc.Recorder) *RemonteesService {
	return &RemonteesService{
		db:    db,
		audit: audit,
	}
}

func (s *RemonteesService) ListByClasse(ctx context.Context, classeID string) ([]dto.Remontee, error) {
	rows, err := s.db.Query(ctx, queries.RemonteeQueries.ListByClasse, classeID)
	if err != nil {
		return nil, fmt.Errorf("liste des remontées: %w", err)
	}
	defer rows.Close()

	remontees := []dto.Remontee{}
	for rows.Next() {
		var r dto.Remontee
		if err := rows.Scan(&r.ID, &r.ClasseID, &r.Sujet, &r.Description, &r.Statut, &r.EtudiantNom, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("liste des remontées: %w", err)
		}
		remontees = append(remontees, r)
	}

	return remontees, rows.Err()
}

// Create dépose une remontée au statut nouvelle
func (s *RemonteesService) Create(ctx context.Context, etudiantID string, req dto.AddRequest) error {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.RemonteeQueries.CheckClasseFK, req.ClasseID).Scan(&exists); err != nil {
		return fmt.Errorf("vérification de la classe: %w", err)
	}
	if !exists {
		return apperr.New("La classe sélectionnée n'existe pas")
	}

	id := uuid.New().String()
	if err := s.db.Exec(ctx, queries.RemonteeQueries.Insert,
		id, req.ClasseID, etudiantID, req.Sujet, req.Description); err != nil {
		return fmt.Errorf("création de la remontée: %w", err)
	}

	s.audit.Record(ctx, etudiantID, fmt.Sprintf("Dépôt de la remontée « %s »", req.Sujet), "remontee")
	return nil
}

// UpdateStatut fait avancer une remontée d'un cran. Les retours en
// arrière et les sauts d'étape sont refusés.
func (s *RemonteesService) UpdateStatut(ctx context.Context, actorID string, req dto.UpdateStatutRequest) error {
	var sujet, statut string
	err := s.db.QueryRow(ctx, queries.RemonteeQueries.GetByID, req.ID).
		Scan(new(string), new(string), &sujet, &statut)
	if err == pgx.ErrNoRows {
		return apperr.New("Remontée introuvable")
	}
	if err != nil {
		return fmt.Errorf("lecture de la remontée: %w", err)
	}

	if transitions[statut] != req.Statut {
		return apperr.New("Passage de « %s » à « %s » impossible", statut, req.Statut)
	}

	if err := s.db.Exec(ctx, queries.RemonteeQueries.UpdateStatut, req.ID, req.Statut); err != nil {
		return fmt.Errorf("mise à jour de la remontée: %w", err)
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Remontée « %s » passée à %s", sujet, req.Statut), "remontee")
	return nil
}
