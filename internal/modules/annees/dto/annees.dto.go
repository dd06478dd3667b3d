package dto

import "time"

// Annee une année académique
type Annee struct {
	ID           string    `json:"id"`
	Libelle      string    `json:"libelle"`
	DateDebut    time.Time `json:"date_debut"`
	DateFin      time.Time `json:"date_fin"`
	EstActive    bool      `json:"est_active"`
	CreatedByNom string    `json:"created_by_nom,omitempty"`
}

// AddRequest formulaire action=add_annee. Les dates arrivent au format
// AAAA-MM-JJ (input type=date).
type AddRequest struct {
	Libelle   string `form:"libelle" binding:"required"`
	DateDebut string `form:"date_debut" binding:"required"`
	DateFin   string `form:"date_fin" binding:"required"`
	EstActive bool   `form:"est_active"`
}

// EditRequest formulaire action=edit_annee
type EditRequest struct {
	ID        string `form:"id" binding:"required"`
	Libelle   string `form:"libelle" binding:"required"`
	DateDebut string `form:"date_debut" binding:"required"`
	DateFin   string `form:"date_fin" binding:"required"`
}

// DeleteRequest formulaire action=delete_annee
type DeleteRequest struct {
	ID string `form:"id" binding:"required"`
}

// ToggleRequest formulaire action=toggle_annee
type ToggleRequest struct {
	ID string `form:"id" binding:"required"`
}
