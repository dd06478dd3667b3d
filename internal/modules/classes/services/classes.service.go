package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/classes/dto"
	"isti-portal-core/internal/modules/classes/queries"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClassesService struct {
	db      postgres.Executor
	tx      postgres.Transactor
	checker *integrity.Checker
	audit   *auditsvc.Recorder
}

func NewClassesService(
	db *postgres.Client,
	tx *postgres.TransactionManager,
	checker *integrity.Checker,
	audit *auditsvc.Recorder,
) *ClassesService {
	return &ClassesService{
		db:      db,
		tx:      tx,
		checker: checker,
		audit:   audit,
	}
}

func (s *ClassesService) List(ctx context.Context) ([]dto.Classe, error) {
	rows, err := s.db.Query(ctx, queries.ClasseQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste des classes: %w", err)
	}
	defer rows.Close()

	classes := []dto.Classe{}
	for rows.Next() {
		var c dto.Classe
		var responsableID *string
		if err := rows.Scan(&c.ID, &c.Niveau, &c.FiliereID, &c.FiliereNom,
			&responsableID, &c.ResponsableNom, &c.NbInscrits); err != nil {
			return nil, fmt.Errorf("liste des classes: %w", err)
		}
		if responsableID != nil {
			c.ResponsableID = *responsableID
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

func (s *ClassesService) Create(ctx context.Context, actorID string, req dto.AddRequest) error {
	if err := s.checkFiliere(ctx, req.FiliereID); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := s.db.Exec(ctx, queries.ClasseQueries.Insert, id, req.Niveau, req.FiliereID, req.ResponsableID); err != nil {
		return fmt.Errorf("création de la classe: %w", err)
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Ajout de la classe « %s »", req.Niveau), integrity.EntityClasse)
	return nil
}

func (s *ClassesService) Update(ctx context.Context, actorID string, req dto.EditRequest) error {
	if err := s.checkFiliere(ctx, req.FiliereID); err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.ClasseQueries.Update, req.ID, req.Niveau, req.FiliereID, req.ResponsableID)
	if err != nil {
		return fmt.Errorf("modification de la classe: %w", err)
	}
	if affected == 0 {
		return apperr.New("Classe introuvable")
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification de la classe « %s »", req.Niveau), integrity.EntityClasse)
	return nil
}

// Delete refuse la suppression tant que la classe est référencée par une
// inscription, un enseignement, un créneau d'emploi du temps ou un
// événement. Vérification et DELETE dans la même transaction.
func (s *ClassesService) Delete(ctx context.Context, actorID, id string) error {
	var niveau string
	err := s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, queries.ClasseQueries.GetByID, id).
			Scan(new(string), &niveau, new(string), new(*string)); err != nil {
			if err == pgx.ErrNoRows {
				return apperr.New("Classe introuvable")
			}
			return fmt.Errorf("lecture de la classe: %w", err)
		}

		if err := s.checker.Check(ctx, tx, integrity.EntityClasse, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, queries.ClasseQueries.Delete, id); err != nil {
			return fmt.Errorf("suppression de la classe: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Suppression de la classe « %s »", niveau), integrity.EntityClasse)
	return nil
}

// Roster effectif d'une classe, trié par matricule
func (s *ClassesService) Roster(ctx context.Context, classeID string) ([]dto.RosterRow, error) {
	rows, err := s.db.Query(ctx, queries.ClasseQueries.Roster, classeID)
	if err != nil {
		return nil, fmt.Errorf("effectif de la classe: %w", err)
	}
	defer rows.Close()

	roster := []dto.RosterRow{}
	for rows.Next() {
		var r dto.RosterRow
		if err := rows.Scan(&r.Matricule, &r.Nom, &r.Email, &r.Telephone,
			&r.DateNaissance, &r.DateInscription, &r.Statut,
			&r.NbNotes, &r.Moyenne, &r.TauxPresence); err != nil {
			return nil, fmt.Errorf("effectif de la classe: %w", err)
		}
		roster = append(roster, r)
	}

	return roster, rows.Err()
}

func (s *ClassesService) checkFiliere(ctx context.Context, filiereID string) error {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.ClasseQueries.CheckFiliereFK, filiereID).Scan(&exists); err != nil {
		return fmt.Errorf("vérification de la filière: %w", err)
	}
	if !exists {
		return apperr.New("La filière sélectionnée n'existe pas")
	}
	return nil
}
