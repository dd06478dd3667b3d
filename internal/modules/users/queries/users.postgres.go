package queries

// UserQueries regroupe les requêtes SQL du module Utilisateurs
var UserQueries = struct {
	List               string
	GetByID            string
	GetRoles           string
	CheckEmailExists   string
	MaxMatriculeSuffix string
	Insert             string
	InsertRole         string
	Update             string
	DeleteRoles        string
	Delete             string
	ToggleActive       string
}{
	/**
	 * Liste les utilisateurs avec leurs rôles agrégés
	 */
	List: `
		SELECT
			u.id,
			u.matricule,
			u.nom,
			u.email,
			COALESCE(u.telephone, '') AS telephone,
			COALESCE(u.photo_url, '') AS photo_url,
			u.est_actif,
			COALESCE(STRING_AGG(r.role, ',' ORDER BY r.role), '') AS roles
		FROM utilisateur u
		LEFT JOIN utilisateur_role r ON r.utilisateur_id = u.id
		GROUP BY u.id, u.matricule, u.nom, u.email, u.telephone, u.photo_url, u.est_actif
		ORDER BY u.nom
	`,

	/**
	 * Récupère un utilisateur (sans ses rôles)
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT
			id,
			matricule,
			nom,
			email,
			COALESCE(telephone, '') AS telephone,
			COALESCE(photo_url, '') AS photo_url,
			est_actif
		FROM utilisateur
		WHERE id = $1
	`,

	/**
	 * Rôles d'un utilisateur, ordre stable
	 * Paramètres: $1 = utilisateur_id
	 */
	GetRoles: `
		SELECT role
		FROM utilisateur_role
		WHERE utilisateur_id = $1
		ORDER BY role
	`,

	/**
	 * Unicité de l'email, en excluant éventuellement une ligne
	 * Paramètres: $1 = email, $2 = id à exclure
	 */
	CheckEmailExists: `
		SELECT EXISTS(
			SELECT 1 FROM utilisateur
			WHERE email = $1 AND id != $2
		)
	`,

	/**
	 * Plus grand suffixe de matricule pour une année donnée.
	 * Le préfixe ISTI-AAAA- fait 10 caractères, le suffixe commence en 11.
	 * Paramètres: $1 = motif LIKE (ex: ISTI-2025-%)
	 */
	MaxMatriculeSuffix: `
		SELECT COALESCE(MAX(CAST(SUBSTRING(matricule FROM 11) AS INTEGER)), 0)
		FROM utilisateur
		WHERE matricule LIKE $1
	`,

	/**
	 * Crée un utilisateur
	 * Paramètres: $1 = id, $2 = matricule, $3 = nom, $4 = email,
	 *             $5 = mot_de_passe (hash), $6 = telephone, $7 = photo_url
	 */
	Insert: `
		INSERT INTO utilisateur (id, matricule, nom, email, mot_de_passe, telephone, photo_url, est_actif, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), TRUE, NOW(), NOW())
	`,

	/**
	 * Attache un rôle à un utilisateur
	 * Paramètres: $1 = utilisateur_id, $2 = role
	 */
	InsertRole: `
		INSERT INTO utilisateur_role (utilisateur_id, role)
		VALUES ($1, $2)
	`,

	/**
	 * Modifie un utilisateur (le matricule et le mot de passe ne changent pas ici)
	 * Paramètres: $1 = id, $2 = nom, $3 = email, $4 = telephone, $5 = photo_url
	 */
	Update: `
		UPDATE utilisateur
		SET nom = $2, email = $3, telephone = NULLIF($4, ''), photo_url = NULLIF($5, ''), updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Détache tous les rôles d'un utilisateur
	 * Paramètres: $1 = utilisateur_id
	 */
	DeleteRoles: `
		DELETE FROM utilisateur_role
		WHERE utilisateur_id = $1
	`,

	/**
	 * Supprime un utilisateur
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM utilisateur
		WHERE id = $1
	`,

	/**
	 * Inverse le drapeau est_actif et retourne le nouvel état
	 * Paramètres: $1 = id
	 */
	ToggleActive: `
		UPDATE utilisateur
		SET est_actif = NOT est_actif, updated_at = NOW()
		WHERE id = $1
		RETURNING nom, est_actif
	`,
}
