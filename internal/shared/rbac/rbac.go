package rbac

import (
	"fmt"
	"strings"
)

// Role ensemble fermé des rôles de la plateforme. Les contrôles d'accès
// passent par ces constantes, jamais par des chaînes libres : une faute de
// frappe devient une erreur de compilation ou de ParseRole, pas un refus
// (ou une autorisation) silencieux.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleRespDept    Role = "resp_dept"
	RoleRespFiliere Role = "resp_filiere"
	RoleRespClasse  Role = "resp_classe"
	RoleEtudiant    Role = "etudiant"
	RoleEnseignant  Role = "enseignant"
	RoleAgentAdmin  Role = "agent_admin"
)

var allRoles = map[Role]struct{}{
	RoleAdmin:       {},
	RoleRespDept:    {},
	RoleRespFiliere: {},
	RoleRespClasse:  {},
	RoleEtudiant:    {},
	RoleEnseignant:  {},
	RoleAgentAdmin:  {},
}

// ParseRole valide une chaîne issue du stockage ou d'un formulaire
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(strings.ToLower(s)))
	if _, ok := allRoles[r]; !ok {
		return "", fmt.Errorf("rôle inconnu: %q", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

// Set ensemble de rôles d'un utilisateur. Un utilisateur peut cumuler
// plusieurs rôles, il n'existe aucune hiérarchie entre eux.
type Set map[Role]struct{}

// NewSet construit un ensemble à partir de rôles valides
func NewSet(roles ...Role) Set {
	s := make(Set, len(roles))
	for _, r := range roles {
		if _, ok := allRoles[r]; ok {
			s[r] = struct{}{}
		}
	}
	return s
}

// ParseSet construit un ensemble depuis des chaînes stockées. Les valeurs
// inconnues sont rejetées en bloc plutôt qu'ignorées.
func ParseSet(values []string) (Set, error) {
	s := make(Set, len(values))
	for _, v := range values {
		r, err := ParseRole(v)
		if err != nil {
			return nil, err
		}
		s[r] = struct{}{}
	}
	return s, nil
}

// Has retourne false sur un ensemble nil ou vide, jamais de panique
func (s Set) Has(r Role) bool {
	if s == nil {
		return false
	}
	_, ok := s[r]
	return ok
}

// HasAny retourne true si au moins un des rôles est présent
func (s Set) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Strings retourne les rôles triés par ordre d'énumération, pour un
// stockage déterministe (CSV de session, réponses JSON).
func (s Set) Strings() []string {
	order := []Role{
		RoleAdmin, RoleRespDept, RoleRespFiliere, RoleRespClasse,
		RoleEtudiant, RoleEnseignant, RoleAgentAdmin,
	}
	out := make([]string, 0, len(s))
	for _, r := range order {
		if s.Has(r) {
			out = append(out, string(r))
		}
	}
	return out
}
