package queries

// AnneeQueries regroupe les requêtes SQL du module Années académiques
var AnneeQueries = struct {
	List               string
	GetByID            string
	CheckLibelleExists string
	Insert             string
	Update             string
	Delete             string
	ToggleActive       string
}{
	/**
	 * Liste les années académiques, les plus récentes d'abord
	 */
	List: `
		SELECT
			a.id,
			a.libelle,
			a.date_debut,
			a.date_fin,
			a.est_active,
			COALESCE(u.nom, '') AS created_by_nom
		FROM annee_academique a
		LEFT JOIN utilisateur u ON u.id = a.created_by
		ORDER BY a.date_debut DESC
	`,

	/**
	 * Récupère une année académique
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, libelle, date_debut, date_fin, est_active
		FROM annee_academique
		WHERE id = $1
	`,

	/**
	 * Unicité du libellé, en excluant éventuellement une ligne
	 * Paramètres: $1 = libelle, $2 = id à exclure
	 */
	CheckLibelleExists: `
		SELECT EXISTS(
			SELECT 1 FROM annee_academique
			WHERE libelle = $1 AND id != $2
		)
	`,

	/**
	 * Crée une année académique
	 * Paramètres: $1 = id, $2 = libelle, $3 = date_debut, $4 = date_fin,
	 *             $5 = est_active, $6 = created_by
	 */
	Insert: `
		INSERT INTO annee_academique (id, libelle, date_debut, date_fin, est_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`,

	/**
	 * Modifie une année académique
	 * Paramètres: $1 = id, $2 = libelle, $3 = date_debut, $4 = date_fin
	 */
	Update: `
		UPDATE annee_academique
		SET libelle = $2, date_debut = $3, date_fin = $4, updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime une année académique
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM annee_academique
		WHERE id = $1
	`,

	/**
	 * Inverse le drapeau est_active et retourne le nouvel état.
	 * Plusieurs années peuvent être actives simultanément : le drapeau
	 * est indicatif, aucune exclusivité n'est imposée.
	 * Paramètres: $1 = id
	 */
	ToggleActive: `
		UPDATE annee_academique
		SET est_active = NOT est_active, updated_at = NOW()
		WHERE id = $1
		RETURNING libelle, est_active
	`,
}
