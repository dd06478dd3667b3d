package queries

// AuthQueries regroupe les requêtes SQL du module Auth
var AuthQueries = struct {
	GetUserByEmail string
	GetUserRoles   string
}{
	/**
	 * Récupère un utilisateur actif par email
	 * Paramètres: $1 = email
	 */
	GetUserByEmail: `
		SELECT id, nom, email, password_hash, est_actif
		FROM utilisateur
		WHERE email = $1
	`,

	/**
	 * Récupère les rôles d'un utilisateur
	 * Paramètres: $1 = utilisateur_id
	 */
	GetUserRoles: `
		SELECT role
		FROM utilisateur_role
		WHERE utilisateur_id = $1
		ORDER BY role
	`,
}
