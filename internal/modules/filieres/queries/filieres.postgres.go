package queries

// FiliereQueries regroupe les requêtes SQL du module Filières
var FiliereQueries = struct {
	List                string
	GetByID             string
	CheckNomExists      string
	CheckDepartementFK  string
	Insert              string
	Update              string
	Delete              string
}{
	/**
	 * Liste les filières avec département, responsable et nombre de classes
	 */
	List: `
		SELECT
			f.id,
			f.nom,
			f.departement_id,
			d.nom AS departement_nom,
			f.responsable_id,
			COALESCE(u.nom, '') AS responsable_nom,
			COUNT(c.id) AS nb_classes
		FROM filiere f
		JOIN departement d ON d.id = f.departement_id
		LEFT JOIN utilisateur u ON u.id = f.responsable_id
		LEFT JOIN classe c ON c.filiere_id = f.id
		GROUP BY f.id, f.nom, f.departement_id, d.nom, f.responsable_id, u.nom
		ORDER BY d.nom, f.nom
	`,

	/**
	 * Récupère une filière
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, nom, departement_id, responsable_id
		FROM filiere
		WHERE id = $1
	`,

	/**
	 * Unicité du nom au sein d'un département
	 * Paramètres: $1 = nom, $2 = departement_id, $3 = id à exclure
	 */
	CheckNomExists: `
		SELECT EXISTS(
			SELECT 1 FROM filiere
			WHERE LOWER(nom) = LOWER($1) AND departement_id = $2 AND id != $3
		)
	`,

	/**
	 * Vérifie que le département référencé existe
	 * Paramètres: $1 = departement_id
	 */
	CheckDepartementFK: `
		SELECT EXISTS(SELECT 1 FROM departement WHERE id = $1)
	`,

	/**
	 * Crée une filière
	 * Paramètres: $1 = id, $2 = nom, $3 = departement_id, $4 = responsable_id
	 */
	Insert: `
		INSERT INTO filiere (id, nom, departement_id, responsable_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW(), NOW())
	`,

	/**
	 * Modifie une filière
	 * Paramètres: $1 = id, $2 = nom, $3 = departement_id, $4 = responsable_id
	 */
	Update: `
		UPDATE filiere
		SET nom = $2, departement_id = $3, responsable_id = NULLIF($4, ''), updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime une filière
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM filiere
		WHERE id = $1
	`,
}
