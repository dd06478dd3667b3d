package queries

// ClasseQueries regroupe les requêtes SQL du module Classes
var ClasseQueries = struct {
	List           string
	GetByID        string
	CheckFiliereFK string
	Insert         string
	Update         string
	Delete         string
	Roster         string
}{
	/**
	 * Liste les classes avec filière, responsable et effectif
	 */
	List: `
		SELECT
			c.id,
			c.niveau,
			c.filiere_id,
			f.nom AS filiere_nom,
			c.responsable_id,
			COALESCE(u.nom, '') AS responsable_nom,
			COUNT(i.id) AS nb_inscrits
		FROM classe c
		JOIN filiere f ON f.id = c.filiere_id
		LEFT JOIN utilisateur u ON u.id = c.responsable_id
		LEFT JOIN inscription i ON i.classe_id = c.id
		GROUP BY c.id, c.niveau, c.filiere_id, f.nom, c.responsable_id, u.nom
		ORDER BY f.nom, c.niveau
	`,

	/**
	 * Récupère une classe
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, niveau, filiere_id, responsable_id
		FROM classe
		WHERE id = $1
	`,

	/**
	 * Vérifie que la filière référencée existe
	 * Paramètres: $1 = filiere_id
	 */
	CheckFiliereFK: `
		SELECT EXISTS(SELECT 1 FROM filiere WHERE id = $1)
	`,

	/**
	 * Crée une classe
	 * Paramètres: $1 = id, $2 = niveau, $3 = filiere_id, $4 = responsable_id
	 */
	Insert: `
		INSERT INTO classe (id, niveau, filiere_id, responsable_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW(), NOW())
	`,

	/**
	 * Modifie une classe
	 * Paramètres: $1 = id, $2 = niveau, $3 = filiere_id, $4 = responsable_id
	 */
	Update: `
		UPDATE classe
		SET niveau = $2, filiere_id = $3, responsable_id = NULLIF($4, ''), updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime une classe
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM classe
		WHERE id = $1
	`,

	/**
	 * Liste des inscrits d'une classe avec notes et présence agrégées.
	 * Tri par matricule : l'export CSV du même effectif est identique
	 * d'un appel à l'autre.
	 * Paramètres: $1 = classe_id
	 */
	Roster: `
		SELECT
			u.matricule,
			u.nom,
			u.email,
			COALESCE(u.telephone, '') AS telephone,
			u.date_naissance,
			i.date_inscription,
			i.statut,
			(SELECT COUNT(*)
				FROM note n
				WHERE n.etudiant_id = u.id AND n.classe_id = i.classe_id) AS nb_notes,
			(SELECT COALESCE(ROUND(AVG(n.valeur)::numeric, 2), 0)
				FROM note n
				WHERE n.etudiant_id = u.id AND n.classe_id = i.classe_id) AS moyenne,
			(SELECT COALESCE(ROUND(100.0 * AVG(CASE WHEN p.est_present THEN 1 ELSE 0 END)::numeric, 1), 0)
				FROM presence p
				WHERE p.etudiant_id = u.id AND p.classe_id = i.classe_id) AS taux_presence
		FROM inscription i
		JOIN utilisateur u ON u.id = i.etudiant_id
		WHERE i.classe_id = $1
		ORDER BY u.matricule
	`,
}
