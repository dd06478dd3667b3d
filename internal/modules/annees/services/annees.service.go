package services

import (
	"context"
	"fmt"
	"time"

	"isti-portal-core/internal/infrastructure/database/postgres"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/annees/dto"
	"isti-portal-core/internal/modules/annees/queries"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

type AnneesService struct {
	db      postgres.Executor
	tx      postgres.Transactor
	checker *integrity.Checker
	audit   *auditsvc.Recorder
}

func NewAnneesService(
	db *postgres.Client,
	tx *postgres.TransactionManager,
	checker *integrity.Checker,
	audit *auditsvc.Recorder,
) *AnneesService {
	return &AnneesService{
		db:      db,
		tx:      tx,
		checker: checker,
		audit:   audit,
	}
}

func (s *AnneesService) List(ctx context.Context) ([]dto.Annee, error) {
	rows, err := s.db.Query(ctx, queries.AnneeQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste des années: %w", err)
	}
	defer rows.Close()

	annees := []dto.Annee{}
	for rows.Next() {
		var a dto.Annee
		if err := rows.Scan(&a.ID, &a.Libelle, &a.DateDebut, &a.DateFin, &a.EstActive, &a.CreatedByNom); err != nil {
			return nil, fmt.Errorf("liste des années: %w", err)
		}
		annees = append(annees, a)
	}

	return annees, rows.Err()
}

func (s *AnneesService) Create(ctx context.Context, actorID string, req dto.AddRequest) error {
	debut, fin, err := ParseDates(req.DateDebut, req.DateFin)
	if err != nil {
		return err
	}

	if err := s.checkLibelle(ctx, req.Libelle, ""); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := s.db.Exec(ctx, queries.AnneeQueries.Insert,
		id, req.Libelle, debut, fin, req.EstActive, actorID); err != nil {
		return fmt.Errorf("création de l'année: %w", err)
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Ajout de l'année académique « %s »", req.Libelle), integrity.EntityAnnee)
	return nil
}

func (s *AnneesService) Update(ctx context.Context, actorID string, req dto.EditRequest) error {
	debut, fin, err := ParseDates(req.DateDebut, req.DateFin)
	if err != nil {
		return err
	}

	if err := s.checkLibelle(ctx, req.Libelle, req.ID); err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.AnneeQueries.Update, req.ID, req.Libelle, debut, fin)
	if err != nil {
		return fmt.Errorf("modification de l'année: %w", err)
	}
	if affected == 0 {
		return apperr.New("Année académique introuvable")
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification de l'année académique « %s »", req.Libelle), integrity.EntityAnnee)
	return nil
}

// Delete refuse la suppression tant que des inscriptions référencent le
// libellé de l'année. Vérification et DELETE dans la même transaction.
func (s *AnneesService) Delete(ctx context.Context, actorID, id string) error {
	var libelle string
	err := s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, queries.AnneeQueries.GetByID, id).
			Scan(new(string), &libelle, new(time.Time), new(time.Time), new(bool)); err != nil {
			if err == pgx.ErrNoRows {
				return apperr.New("Année académique introuvable")
			}
			return fmt.Errorf("lecture de l'année: %w", err)
		}

		// Les inscriptions pointent le libellé, pas l'id
		if err := s.checker.Check(ctx, tx, integrity.EntityAnnee, libelle); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, queries.AnneeQueries.Delete, id); err != nil {
			return fmt.Errorf("suppression de l'année: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Suppression de l'année académique « %s »", libelle), integrity.EntityAnnee)
	return nil
}

// Toggle inverse le drapeau est_active d'une année
func (s *AnneesService) Toggle(ctx context.Context, actorID, id string) error {
	var libelle string
	var estActive bool
	err := s.db.QueryRow(ctx, queries.AnneeQueries.ToggleActive, id).Scan(&libelle, &estActive)
	if err == pgx.ErrNoRows {
		return apperr.New("Année académique introuvable")
	}
	if err != nil {
		return fmt.Errorf("activation de l'année: %w", err)
	}

	etat := "désactivation"
	if estActive {
		etat = "activation"
	}
	s.audit.Record(ctx, actorID, fmt.Sprintf("%s de l'année académique « %s »", etat, libelle), integrity.EntityAnnee)
	return nil
}

// ParseDates valide le format des deux dates et l'ordre début < fin
func ParseDates(dateDebut, dateFin string) (time.Time, time.Time, error) {
	debut, err := time.Parse(dateLayout, dateDebut)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.New("La date de début est invalide")
	}

	fin, err := time.Parse(dateLayout, dateFin)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.New("La date de fin est invalide")
	}

	if !fin.After(debut) {
		return time.Time{}, time.Time{}, apperr.New("La date de fin doit être postérieure à la date de début")
	}

	return debut, fin, nil
}

func (s *AnneesService) checkLibelle(ctx context.Context, libelle, excludeID string) error {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.AnneeQueries.CheckLibelleExists, libelle, excludeID).Scan(&exists); err != nil {
		return fmt.Errorf("vérification du libellé: %w", err)
	}
	if exists {
		return apperr.New("L'année académique « %s » existe déjà", libelle)
	}
	return nil
}
