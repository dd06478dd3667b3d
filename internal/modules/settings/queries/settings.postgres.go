package queries

// SettingQueries regroupe les requêtes SQL du module Paramètres
var SettingQueries = struct {
	LoadAll string
	Upsert  string
}{
	/**
	 * Charge tous les paramètres, ordre stable par catégorie puis clé
	 */
	LoadAll: `
		SELECT
			cle,
			valeur,
			type,
			COALESCE(categorie, '') AS categorie,
			COALESCE(description, '') AS description
		FROM parametre
		ORDER BY categorie, cle
	`,

	/**
	 * Crée ou met à jour un paramètre. La catégorie et la description
	 * existantes sont conservées lors d'une mise à jour.
	 * Paramètres: $1 = cle, $2 = valeur, $3 = type
	 */
	Upsert: `
		INSERT INTO parametre (cle, valeur, type, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (cle) DO UPDATE
		SET valeur = EXCLUDED.valeur, type = EXCLUDED.type, updated_at = NOW()
	`,
}
