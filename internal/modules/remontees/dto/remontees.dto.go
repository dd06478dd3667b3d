package dto

import "time"

// Statuts du cycle de vie d'une remontée
const (
	StatutNouvelle = "nouvelle"
	StatutEnCours  = "en_cours"
	StatutResolue  = "resolue"
)

// Remontee un signalement déposé par un étudiant pour sa classe
type Remontee struct {
	ID          string    `json:"id"`
	ClasseID    string    `json:"classe_id"`
	Sujet       string    `json:"sujet"`
	Description string    `json:"description"`
	Statut      string    `json:"statut"`
	EtudiantNom string    `json:"etudiant_nom"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddRequest formulaire action=add_remontee
type AddRequest struct {
	ClasseID    string `form:"classe_id" binding:"required"`
	Sujet       string `form:"sujet" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// UpdateStatutRequest formulaire action=update_remontee
type UpdateStatutRequest struct {
	ID     string `form:"id" binding:"required"`
	Statut string `form:"statut" binding:"required"`
}
