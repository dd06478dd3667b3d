package queries

// StatsQueries regroupe les requêtes SQL du module Statistiques.
// Toutes sont en lecture seule et tolèrent des tables vides.
var StatsQueries = struct {
	GlobalCounts     string
	RoleDistribution string
	DepartementStats string
	GradeBands       string
	AverageGrade     string
}{
	/**
	 * Effectifs globaux de la plateforme
	 */
	GlobalCounts: `
		SELECT
			(SELECT COUNT(*) FROM utilisateur)       AS nb_utilisateurs,
			(SELECT COUNT(*) FROM departement)       AS nb_departements,
			(SELECT COUNT(*) FROM filiere)           AS nb_filieres,
			(SELECT COUNT(*) FROM classe)            AS nb_classes,
			(SELECT COUNT(*) FROM annee_academique)  AS nb_annees
	`,

	/**
	 * Répartition des comptes par rôle
	 */
	RoleDistribution: `
		SELECT role, COUNT(*) AS total
		FROM utilisateur_role
		GROUP BY role
		ORDER BY role
	`,

	/**
	 * Volumes par département : filières, classes et étudiants inscrits
	 */
	DepartementStats: `
		SELECT
			d.id,
			d.nom,
			COUNT(DISTINCT f.id) AS nb_filieres,
			COUNT(DISTINCT c.id) AS nb_classes,
			COUNT(DISTINCT i.etudiant_id) AS nb_etudiants
		FROM departement d
		LEFT JOIN filiere f ON f.departement_id = d.id
		LEFT JOIN classe c ON c.filiere_id = f.id
		LEFT JOIN inscription i ON i.classe_id = c.id
		GROUP BY d.id, d.nom
		ORDER BY d.nom
	`,

	/**
	 * Histogramme des notes par tranche de 5 points (sur 20)
	 */
	GradeBands: `
		SELECT
			CASE
				WHEN valeur < 5 THEN '0-4'
				WHEN valeur < 10 THEN '5-9'
				WHEN valeur < 15 THEN '10-14'
				ELSE '15-20'
			END AS tranche,
			COUNT(*) AS total
		FROM note
		GROUP BY 1
		ORDER BY MIN(valeur)
	`,

	/**
	 * Moyenne générale des notes, 0 si aucune note
	 */
	AverageGrade: `
		SELECT COALESCE(ROUND(AVG(valeur)::numeric, 2), 0)
		FROM note
	`,
}
