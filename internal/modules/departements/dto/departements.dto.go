package dto

// Departement ligne de la liste des départements
type Departement struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	ResponsableID  string `json:"responsable_id,omitempty"`
	ResponsableNom string `json:"responsable_nom,omitempty"`
	NbFilieres     int    `json:"nb_filieres"`
}

// AddRequest formulaire action=add_departement
type AddRequest struct {
	Nom           string `form:"nom" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// EditRequest formulaire action=edit_departement
type EditRequest struct {
	ID            string `form:"id" binding:"required"`
	Nom           string `form:"nom" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// DeleteRequest formulaire action=delete_departement
type DeleteRequest struct {
	ID string `form:"id" binding:"required"`
}
