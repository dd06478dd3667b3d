package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/departements/dto"
	"isti-portal-core/internal/modules/departements/queries"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DepartementsService struct {
	db      postgres.Executor
	tx      postgres.Transactor
	checker *integrity.Checker
	audit   *auditsvc.Recorder
}

func NewDepartementsService(
	db *postgres.Client,
	tx *postgres.TransactionManager,
	checker *integrity.Checker,
	audit *auditsvc.Recorder,
) *DepartementsService {
	return &DepartementsService{
		db:      db,
		tx:      tx,
		checker: checker,
		audit:   audit,
	}
}

func (s *DepartementsService) List(ctx context.Context) ([]dto.Departement, error) {
	rows, err := s.db.Query(ctx, queries.DepartementQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste des départements: %w", err)
	}
	defer rows.Close()

	departements := []dto.Departement{}
	for rows.Next() {
		var d dto.Departement
		var responsableID *string
		if err := rows.Scan(&d.ID, &d.Nom, &responsableID, &d.ResponsableNom, &d.NbFilieres); err != nil {
			return nil, fmt.Errorf("liste des départements: %w", err)
		}
		if responsableID != nil {
			d.ResponsableID = *responsableID
		}
		departements = append(departements, d)
	}

	return departements, rows.Err()
}

// Create ajoute un département après contrôle d'unicité du nom
func (s *DepartementsService) Create(ctx context.Context, actorID string, req dto.AddRequest) error {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.DepartementQueries.CheckNomExists, req.Nom, "").Scan(&exists); err != nil {
		return fmt.Errorf("vérification du nom: %w", err)
	}
	if exists {
		return apperr.New("Un département nommé « %s » existe déjà", req.Nom)
	}

	id := uuid.New().String()
	if err := s.db.Exec(ctx, queries.DepartementQueries.Insert, id, req.Nom, req.ResponsableID); err != nil {
		return fmt.Errorf("création du département: %w", err)
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Ajout du département « %s »", req.Nom), integrity.EntityDepartement)
	return nil
}

// Update modifie un département existant
func (s *DepartementsService) Update(ctx context.Context, actorID string, req dto.EditRequest) error {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.DepartementQueries.CheckNomExists, req.Nom, req.ID).Scan(&exists); err != nil {
		return fmt.Errorf("vérification du nom: %w", err)
	}
	if exists {
		return apperr.New("Un département nommé « %s » existe déjà", req.Nom)
	}

	affected, err := s.db.ExecAffected(ctx, queries.DepartementQueries.Update, req.ID, req.Nom, req.ResponsableID)
	if err != nil {
		return fmt.Errorf("modification du département: %w", err)
	}
	if affected == 0 {
		return apperr.New("Département introuvable")
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification du département « %s »", req.Nom), integrity.EntityDepartement)
	return nil
}

// Delete supprime un département. La vérification d'intégrité et le
// DELETE partagent la même transaction pour éviter la course entre
// vérification et suppression.
func (s *DepartementsService) Delete(ctx context.Context, actorID, id string) error {
	var nom string
	err := s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, queries.DepartementQueries.GetByID, id).Scan(new(string), &nom, new(*string)); err != nil {
			if err == pgx.ErrNoRows {
				return apperr.New("Département introuvable")
			}
			return fmt.Errorf("lecture du département: %w", err)
		}

		if err := s.checker.Check(ctx, tx, integrity.EntityDepartement, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, queries.DepartementQueries.Delete, id); err != nil {
			return fmt.Errorf("suppression du département: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Suppression du département « %s »", nom), integrity.EntityDepartement)
	return nil
}
