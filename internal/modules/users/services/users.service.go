package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/mailer"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/users/dto"
	"isti-portal-core/internal/modules/users/queries"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"
	"isti-portal-core/internal/shared/rbac"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UsersService struct {
	db      postgres.Executor
	tx      postgres.Transactor
	checker *integrity.Checker
	audit   *auditsvc.Recorder
	mailer  *mailer.Mailer

	// horloge injectable pour fixer l'année du matricule en test
	now func() time.Time
}

func NewUsersService(
	db *postgres.Client,
	tx *postgres.TransactionManager,
	checker *integrity.Checker,
	audit *auditsvc.Recorder,
	m *mailer.Mailer,
) *UsersService {
	return &UsersService{
		db:      db,
		tx:      tx,
		checker: checker,
		audit:   audit,
		mailer:  m,
		now:     time.Now,
	}
}

func (s *UsersService) List(ctx context.Context) ([]dto.Utilisateur, error) {
	rows, err := s.db.Query(ctx, queries.UserQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste des utilisateurs: %w", err)
	}
	defer rows.Close()

	users := []dto.Utilisateur{}
	for rows.Next() {
		var u dto.Utilisateur
		var rolesCSV string
		if err := rows.Scan(&u.ID, &u.Matricule, &u.Nom, &u.Email, &u.Telephone, &u.PhotoURL, &u.EstActif, &rolesCSV); err != nil {
			return nil, fmt.Errorf("liste des utilisateurs: %w", err)
		}
		u.Roles = splitRoles(rolesCSV)
		users = append(users, u)
	}

	return users, rows.Err()
}

// Create crée l'utilisateur, son matricule et ses rôles dans une seule
// transaction. L'email de bienvenue part après le commit, en meilleur effort.
func (s *UsersService) Create(ctx context.Context, actorID string, req dto.AddRequest) error {
	roleSet, err := rbac.ParseSet(req.Roles)
	if err != nil {
		return apperr.New("Un des rôles sélectionnés est invalide")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hachage du mot de passe: %w", err)
	}

	id := uuid.New().String()
	var matricule string
	err = s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, queries.UserQueries.CheckEmailExists, req.Email, "").Scan(&exists); err != nil {
			return fmt.Errorf("vérification de l'email: %w", err)
		}
		if exists {
			return apperr.New("Un compte utilise déjà l'email %s", req.Email)
		}

		annee := s.now().Year()
		var suffixe int
		if err := tx.QueryRow(ctx, queries.UserQueries.MaxMatriculeSuffix, MatriculePattern(annee)).Scan(&suffixe); err != nil {
			return fmt.Errorf("génération du matricule: %w", err)
		}
		matricule = FormatMatricule(annee, suffixe+1)

		if _, err := tx.Exec(ctx, queries.UserQueries.Insert,
			id, matricule, req.Nom, req.Email, string(hash), req.Telephone, req.PhotoURL); err != nil {
			return fmt.Errorf("création de l'utilisateur: %w", err)
		}

		for _, role := range roleSet.Strings() {
			if _, err := tx.Exec(ctx, queries.UserQueries.InsertRole, id, role); err != nil {
				return fmt.Errorf("attribution du rôle %s: %w", role, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Ajout de l'utilisateur « %s » (%s)", req.Nom, matricule), integrity.EntityUtilisateur)
	s.sendWelcomeEmail(ctx, req.Email, req.Nom, matricule)
	return nil
}

// Update modifie la fiche et remplace l'ensemble des rôles, le tout dans
// une transaction
func (s *UsersService) Update(ctx context.Context, actorID string, req dto.EditRequest) error {
	roleSet, err := rbac.ParseSet(req.Roles)
	if err != nil {
		return apperr.New("Un des rôles sélectionnés est invalide")
	}

	err = s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, queries.UserQueries.CheckEmailExists, req.Email, req.ID).Scan(&exists); err != nil {
			return fmt.Errorf("vérification de l'email: %w", err)
		}
		if exists {
			return apperr.New("Un compte utilise déjà l'email %s", req.Email)
		}

		tag, err := tx.Exec(ctx, queries.UserQueries.Update,
			req.ID, req.Nom, req.Email, req.Telephone, req.PhotoURL)
		if err != nil {
			return fmt.Errorf("modification de l'utilisateur: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.New("Utilisateur introuvable")
		}

		if _, err := tx.Exec(ctx, queries.UserQueries.DeleteRoles, req.ID); err != nil {
			return fmt.Errorf("remplacement des rôles: %w", err)
		}
		for _, role := range roleSet.Strings() {
			if _, err := tx.Exec(ctx, queries.UserQueries.InsertRole, req.ID, role); err != nil {
				return fmt.Errorf("attribution du rôle %s: %w", role, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification de l'utilisateur « %s »", req.Nom), integrity.EntityUtilisateur)
	return nil
}

// Delete refuse la suppression tant que l'utilisateur est responsable
// d'une structure ou rattaché à des inscriptions ou enseignements
func (s *UsersService) Delete(ctx context.Context, actorID, id string) error {
	var nom string
	err := s.tx.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, queries.UserQueries.GetByID, id).
			Scan(new(string), new(string), &nom, new(string), new(string), new(string), new(bool)); err != nil {
			if err == pgx.ErrNoRows {
				return apperr.New("Utilisateur introuvable")
			}
			return fmt.Errorf("lecture de l'utilisateur: %w", err)
		}

		if err := s.checker.Check(ctx, tx, integrity.EntityUtilisateur, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, queries.UserQueries.DeleteRoles, id); err != nil {
			return fmt.Errorf("suppression des rôles: %w", err)
		}
		if _, err := tx.Exec(ctx, queries.UserQueries.Delete, id); err != nil {
			return fmt.Errorf("suppression de l'utilisateur: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Suppression de l'utilisateur « %s »", nom), integrity.EntityUtilisateur)
	return nil
}

// Toggle inverse le drapeau est_actif d'un compte
func (s *UsersService) Toggle(ctx context.Context, actorID, id string) error {
	var nom string
	var estActif bool
	err := s.db.QueryRow(ctx, queries.UserQueries.ToggleActive, id).Scan(&nom, &estActif)
	if err == pgx.ErrNoRows {
		return apperr.New("Utilisateur introuvable")
	}
	if err != nil {
		return fmt.Errorf("activation de l'utilisateur: %w", err)
	}

	etat := "Désactivation"
	if estActif {
		etat = "Activation"
	}
	s.audit.Record(ctx, actorID, fmt.Sprintf("%s du compte « %s »", etat, nom), integrity.EntityUtilisateur)
	return nil
}

// Lookup récupère un utilisateur et ses rôles pour le panneau d'édition
func (s *UsersService) Lookup(ctx context.Context, id string) (*dto.Utilisateur, error) {
	var u dto.Utilisateur
	err := s.db.QueryRow(ctx, queries.UserQueries.GetByID, id).
		Scan(&u.ID, &u.Matricule, &u.Nom, &u.Email, &u.Telephone, &u.PhotoURL, &u.EstActif)
	if err == pgx.ErrNoRows {
		return nil, apperr.New("Utilisateur introuvable")
	}
	if err != nil {
		return nil, fmt.Errorf("lecture de l'utilisateur: %w", err)
	}

	rows, err := s.db.Query(ctx, queries.UserQueries.GetRoles, id)
	if err != nil {
		return nil, fmt.Errorf("lecture des rôles: %w", err)
	}
	defer rows.Close()

	u.Roles = []string{}
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("lecture des rôles: %w", err)
		}
		u.Roles = append(u.Roles, role)
	}

	return &u, rows.Err()
}

func (s *UsersService) sendWelcomeEmail(ctx context.Context, email, nom, matricule string) {
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p>"+
			"<p>Votre compte sur le portail ISTI a été créé. Votre matricule est <strong>%s</strong>.</p>"+
			"<p>Connectez-vous avec votre adresse email pour accéder à votre espace.</p>",
		nom, matricule,
	)
	s.mailer.SendEmail(ctx, email, nom, "Bienvenue sur le portail ISTI", body)
}

func splitRoles(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}
