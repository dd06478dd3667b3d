package queries

// DepartementQueries regroupe les requêtes SQL du module Départements
var DepartementQueries = struct {
	List            string
	GetByID         string
	CheckNomExists  string
	Insert          string
	Update          string
	Delete          string
}{
	/**
	 * Liste les départements avec leur responsable et le nombre de filières
	 */
	List: `
		SELECT
			d.id,
			d.nom,
			d.responsable_id,
			COALESCE(u.nom, '') AS responsable_nom,
			COUNT(f.id) AS nb_filieres
		FROM departement d
		LEFT JOIN utilisateur u ON u.id = d.responsable_id
		LEFT JOIN filiere f ON f.departement_id = d.id
		GROUP BY d.id, d.nom, d.responsable_id, u.nom
		ORDER BY d.nom
	`,

	/**
	 * Récupère un département
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, nom, responsable_id
		FROM departement
		WHERE id = $1
	`,

	/**
	 * Vérifie l'unicité du nom, en excluant éventuellement une ligne
	 * Paramètres: $1 = nom, $2 = id à exclure ('' pour un ajout)
	 */
	CheckNomExists: `
		SELECT EXISTS(
			SELECT 1 FROM departement
			WHERE LOWER(nom) = LOWER($1) AND id != $2
		)
	`,

	/**
	 * Crée un département
	 * Paramètres: $1 = id, $2 = nom, $3 = responsable_id (nullable)
	 */
	Insert: `
		INSERT INTO departement (id, nom, responsable_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW(), NOW())
	`,

	/**
	 * Modifie un département
	 * Paramètres: $1 = id, $2 = nom, $3 = responsable_id (nullable)
	 */
	Update: `
		UPDATE departement
		SET nom = $2, responsable_id = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un département
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM departement
		WHERE id = $1
	`,
}
