package dto

// Filiere ligne de la liste des filières
type Filiere struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	DepartementID  string `json:"departement_id"`
	DepartementNom string `json:"departement_nom"`
	ResponsableID  string `json:"responsable_id,omitempty"`
	ResponsableNom string `json:"responsable_nom,omitempty"`
	NbClasses      int    `json:"nb_classes"`
}

// AddRequest formulaire action=add_filiere
type AddRequest struct {
	Nom           string `form:"nom" binding:"required"`
	DepartementID string `form:"departement_id" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// EditRequest formulaire action=edit_filiere
type EditRequest struct {
	ID            string `form:"id" binding:"required"`
	Nom           string `form:"nom" binding:"required"`
	DepartementID string `form:"departement_id" binding:"required"`
	ResponsableID string `form:"responsable_id"`
}

// DeleteRequest formulaire action=delete_filiere
type DeleteRequest struct {
	ID string `form:"id" binding:"required"`
}
