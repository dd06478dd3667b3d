package dto

// GlobalCounts effectifs globaux du tableau de bord
type GlobalCounts struct {
	NbUtilisateurs int `json:"nb_utilisateurs"`
	NbDepartements int `json:"nb_departements"`
	NbFilieres     int `json:"nb_filieres"`
	NbClasses      int `json:"nb_classes"`
	NbAnnees       int `json:"nb_annees"`
}

// RoleCount effectif d'un rôle
type RoleCount struct {
	Role  string `json:"role"`
	Total int    `json:"total"`
}

// DepartementStats volumes d'un département
type DepartementStats struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	NbFilieres  int    `json:"nb_filieres"`
	NbClasses   int    `json:"nb_classes"`
	NbEtudiants int    `json:"nb_etudiants"`
}

// GradeBand effectif d'une tranche de notes
type GradeBand struct {
	Tranche string `json:"tranche"`
	Total   int    `json:"total"`
}

// Dashboard réponse complète du tableau de bord statistiques
type Dashboard struct {
	Effectifs       GlobalCounts       `json:"effectifs"`
	ParRole         []RoleCount        `json:"par_role"`
	ParDepartement  []DepartementStats `json:"par_departement"`
	TranchesDeNotes []GradeBand        `json:"tranches_de_notes"`
	MoyenneGenerale float64            `json:"moyenne_generale"`
}
