package integrity

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
)

// Entités connues du vérificateur
const (
	EntityDepartement = "departement"
	EntityFiliere     = "filiere"
	EntityClasse      = "classe"
	EntityUtilisateur = "utilisateur"
	EntityAnnee       = "annee_academique"
)

// Rule une relation qui bloque la suppression tant qu'elle contient des
// lignes dépendantes. Query prend exactement un paramètre $1 (id ou
// libellé selon l'entité) et retourne un COUNT.
type Rule struct {
	Relation string
	Query    string
}

// BlockedError suppression refusée : l'entité est encore référencée
type BlockedError struct {
	Entity   string
	Relation string
	Count    int
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("impossible de supprimer : contient %d %s", e.Count, e.Relation)
}

// Checker exécute les règles d'intégrité référentielle d'une entité.
// Les règles s'exécutent sur un Queryer : le service de suppression passe
// sa transaction pour que vérification et DELETE partagent le même scope.
type Checker struct {
	rules map[string][]Rule
}

func NewChecker() *Checker {
	return &Checker{rules: map[string][]Rule{
		EntityDepartement: {
			{Relation: "filière(s)", Query: `SELECT COUNT(*) FROM filiere WHERE departement_id = $1`},
		},
		EntityFiliere: {
			{Relation: "classe(s)", Query: `SELECT COUNT(*) FROM classe WHERE filiere_id = $1`},
		},
		EntityClasse: {
			{Relation: "inscription(s)", Query: `SELECT COUNT(*) FROM inscription WHERE classe_id = $1`},
			{Relation: "enseignement(s)", Query: `SELECT COUNT(*) FROM enseignement WHERE classe_id = $1`},
			{Relation: "créneau(x) d'emploi du temps", Query: `SELECT COUNT(*) FROM emploi_temps WHERE classe_id = $1`},
			{Relation: "événement(s)", Query: `SELECT COUNT(*) FROM evenement WHERE classe_id = $1`},
		},
		EntityUtilisateur: {
			{Relation: "département(s) sous responsabilité", Query: `SELECT COUNT(*) FROM departement WHERE responsable_id = $1`},
			{Relation: "filière(s) sous responsabilité", Query: `SELECT COUNT(*) FROM filiere WHERE responsable_id = $1`},
			{Relation: "classe(s) sous responsabilité", Query: `SELECT COUNT(*) FROM classe WHERE responsable_id = $1`},
			{Relation: "inscription(s)", Query: `SELECT COUNT(*) FROM inscription WHERE etudiant_id = $1`},
			{Relation: "enseignement(s)", Query: `SELECT COUNT(*) FROM enseignement WHERE enseignant_id = $1`},
		},
		// Les inscriptions référencent l'année par son libellé
		EntityAnnee: {
			{Relation: "inscription(s)", Query: `SELECT COUNT(*) FROM inscription WHERE annee_academique = $1`},
		},
	}}
}

// Check retourne un *BlockedError dès la première règle violée, nil si
// l'entité est supprimable. key est l'id de la ligne, sauf pour les années
// académiques où c'est le libellé.
func (c *Checker) Check(ctx context.Context, q postgres.Queryer, entity, key string) error {
	rules, ok := c.rules[entity]
	if !ok {
		return fmt.Errorf("entité inconnue du vérificateur d'intégrité: %q", entity)
	}

	for _, rule := range rules {
		var count int
		if err := q.QueryRow(ctx, rule.Query, key).Scan(&count); err != nil {
			return fmt.Errorf("vérification de %s impossible: %w", rule.Relation, err)
		}
		if count > 0 {
			return &BlockedError{Entity: entity, Relation: rule.Relation, Count: count}
		}
	}

	return nil
}

// CountDependents total des lignes dépendantes, toutes relations confondues
func (c *Checker) CountDependents(ctx context.Context, q postgres.Queryer, entity, key string) (int, error) {
	rules, ok := c.rules[entity]
	if !ok {
		return 0, fmt.Errorf("entité inconnue du vérificateur d'intégrité: %q", entity)
	}

	total := 0
	for _, rule := range rules {
		var count int
		if err := q.QueryRow(ctx, rule.Query, key).Scan(&count); err != nil {
			return 0, fmt.Errorf("vérification de %s impossible: %w", rule.Relation, err)
		}
		total += count
	}

	return total, nil
}
