package dto

// EditRequest formulaire action=edit_parametre
type EditRequest struct {
	Cle    string `form:"cle" binding:"required"`
	Valeur string `form:"valeur"`
	Type   string `form:"type" binding:"required"`
}
