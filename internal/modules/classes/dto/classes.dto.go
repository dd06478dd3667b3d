package dto

import "time"

// Classe ligne de la liste des classes
type Classe struct {
	ID             string `json:"id"`
	Niveau         string `json:"niveau"`
	FiliereID      string `json:"filiere_id"`
	FiliereNom     string `json:"filiere_nom"`
	ResponsableID  string `json:"responsable_id,omitempty"`
	ResponsableNom string `json:"responsable_nom,omitempty"`
	NbInscrits     int    `json:"nb_inscrits"`
}

// AddRequest formulaire action=add_classe
type AddRequest struct {
	Niveau        string `form:"niveau" binding:"required"`
	FiliereID     string `form:"filiere_id" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// EditRequest formulaire action=edit_classe
type EditRequest struct {
	ID            string `form:"id" binding:"required"`
	Niveau        string `form:"niveau" binding:"required"`
	FiliereID     string `form:"filiere_id" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// DeleteRequest formulaire action=delete_classe
type DeleteRequest struct {
	ID string `form:"id" binding:"required"`
}

// RosterRow un étudiant de l'effectif d'une classe
type RosterRow struct {
	Matricule       string     `json:"matricule"`
	Nom             string     `json:"nom"`
	Email           string     `json:"email"`
	Telephone       string     `json:"telephone"`
	DateNaissance   *time.Time `json:"date_naissance"`
	DateInscription time.Time  `json:"date_inscription"`
	Statut          string     `json:"statut"`
	NbNotes         int        `json:"nb_notes"`
	Moyenne         float64    `json:"moyenne"`
	TauxPresence    float64    `json:"taux_presence"`
}
