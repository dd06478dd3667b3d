package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/filieres/dto"
	"isti-portal-core/internal/modules/filieres/queries"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FilieresService struct {
	db      postgres.Executor
	tx      postgres.Transactor
	checker *integrity.Checker
	audit   *auditsvc.Recorder
}

func NewFilieresService(
	db *postgres.Client,
	tx *postgres.TransactionManager,
	checker *integrity.Checker,
	audit *auditsvc.Recorder,
) *FilieresService {
	return &FilieresService{
		db:      db,
		tx:      tx,
		checker: checker,
		audit:   audit,
	}
}

func (s *FilieresService) List(ctx context.Context) ([]dto.Filiere, error) {
	rows, err := s.db.Query(ctx, queries.FiliereQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste des filières: %w", err)
	}
	defer rows.Close()

	filieres := []dto.Filiere{}
	for rows.Next() {
		var f dto.Filiere
		var responsableID *string
		if err := rows.Scan(&f.ID, &f.Nom, &f.DepartementID, &f.DepartementNom,
			&responsableID, &f.ResponsableNom, &f.NbClasses); err != nil {
			return nil, fmt.Errorf("liste des filières: %w", err)
		}
		if responsableID != nil {
			f.ResponsableID = *responsableID
		}
		filieres = append(filieres, f)
	}

	return filieres, rows.Err()
}

func (s *FilieresService) Create(ctx context.Context, actorID string, req dto.AddRequest) error {
	if err := s.validate(ctx, req.Nom, req.DepartementID, ""); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := s.db.Exec(ctx, queries.FiliereQueries.Insert, id, req.Nom, req.DepartementID, req.ResponsableID); err != nil {
		return fmt.Errorf("création de la filière: %w", err)
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Ajout de la filière « %s »", req.Nom), integrity.EntityFiliere)
	return nil
}

func (s *FilieresService) Update(ctx context.Context, actorID string, req dto.EditRequest) error {
	if err := s.validate(ctx, req.Nom, req.DepartementID, req.ID); err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.FiliereQueries.Update, req.ID, req.Nom, req.DepartementID, req.ResponsableID)
	if err != nil {
		return fmt.Errorf("modification de la filière: %w", err)
	}
	if affected == 0 {
		return apperr.New("Filière introuvable")
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification de la filière « %s »", req.Nom), integrity.EntityFiliere)
	return nil
}

// Delete refuse la suppression tant que la filière possède des classes ;
// vérification et DELETE dans la même transaction.
func (s *FilieresService) Delete(ctx context.Context, actorID, id string) error {
	var nom string
	err := s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, queries.FiliereQueries.GetByID, id).
			Scan(new(string), &nom, new(string), new(*string)); err != nil {
			if err == pgx.ErrNoRows {
				return apperr.New("Filière introuvable")
			}
			return fmt.Errorf("lecture de la filière: %w", err)
		}

		if err := s.checker.Check(ctx, tx, integrity.EntityFiliere, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, queries.FiliereQueries.Delete, id); err != nil {
			return fmt.Errorf("suppression de la filière: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Suppression de la filière « %s »", nom), integrity.EntityFiliere)
	return nil
}

func (s *FilieresService) validate(ctx context.Context, nom, departementID, excludeID string) error {
	var departementExists bool
	if err := s.db.QueryRow(ctx, queries.FiliereQueries.CheckDepartementFK, departementID).Scan(&departementExists); err != nil {
		return fmt.Errorf("vérification du département: %w", err)
	}
	if !departementExists {
		return apperr.New("Le département sélectionné n'existe pas")
	}

	var nomExists bool
	if err := s.db.QueryRow(ctx, queries.FiliereQueries.CheckNomExists, nom, departementID, excludeID).Scan(&nomExists); err != nil {
		return fmt.Errorf("vérification du nom: %w", err)
	}
	if nomExists {
		return apperr.New("Une filière nommée « %s » existe déjà dans ce département", nom)
	}

	return nil
}
