package dto

// Utilisateur un compte du portail avec ses rôles
type Utilisateur struct {
	ID        string   `json:"id"`
	Matricule string   `json:"matricule"`
	Nom       string   `json:"nom"`
	Email     string   `json:"email"`
	Telephone string   `json:"telephone,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	EstActif  bool     `json:"est_actif"`
	Roles     []string `json:"roles"`
}

// AddRequest formulaire action=add_utilisateur. Les rôles arrivent en
// cases à cocher multiples (roles[]).
type AddRequest struct {
	Nom        string   `form:"nom" binding:"required"`
	Email      string   `form:"email" binding:"required,email"`
	MotDePasse string   `form:"mot_de_passe" binding:"required,min=8"`
	Telephone  string   `form:"telephone"`
	PhotoURL   string   `form:"photo_url"`
	Roles      []string `form:"roles[]" binding:"required,min=1"`
}

// EditRequest formulaire action=edit_utilisateur. Le matricule et le mot
// de passe ne sont pas modifiables par ce formulaire.
type EditRequest struct {
	ID        string   `form:"id" binding:"required"`
	Nom       string   `form:"nom" binding:"required"`
	Email     string   `form:"email" binding:"required,email"`
	Telephone string   `form:"telephone"`
	PhotoURL  string   `form:"photo_url"`
	Roles     []string `form:"roles[]" binding:"required,min=1"`
}

// DeleteRequest formulaire action=delete_utilisateur
type DeleteRequest struct {
	ID string `form:"id" binding:"required"`
}

// ToggleRequest formulaire action=toggle_utilisateur
type ToggleRequest struct {
	ID string `form:"id" binding:"required"`
}
