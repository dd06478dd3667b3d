package queries

// RemonteeQueries regroupe les requêtes SQL du module Remontées
var RemonteeQueries = struct {
	ListByClasse  string
	GetByID       string
	CheckClasseFK string
	Insert        string
	UpdateStatut  string
}{
	/**
	 * Remontées d'une classe, les plus récentes d'abord
	 * Paramètres: $1 = classe_id
	 */
	ListByClasse: `
		SELECT
			r.id,
			r.classe_id,
			r.sujet,
			r.description,
			r.statut,
			u.nom AS etudiant_nom,
			r.created_at
		FROM remontee r
		JOIN utilisateur u ON u.id = r.etudiant_id
		WHERE r.classe_id = $1
		ORDER BY r.created_at DESC
	`,

	/**
	 * Récupère une remontée
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, classe_id, sujet, statut
		FROM remontee
		WHERE id = $1
	`,

	/**
	 * Vérifie l'existence de la classe cible
	 * Paramètres: $1 = classe_id
	 */
	CheckClasseFK: `
		SELECT EXISTS(
			SELECT 1 FROM classe WHERE id = $1
		)
	`,

	/**
	 * Crée une remontée au statut initial
	 * Paramètres: $1 = id, $2 = classe_id, $3 = etudiant_id,
	 *             $4 = sujet, $5 = description
	 */
	Insert: `
		INSERT INTO remontee (id, classe_id, etudiant_id, sujet, description, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'nouvelle', NOW(), NOW())
	`,

	/**
	 * Fait avancer le statut d'une remontée
	 * Paramètres: $1 = id, $2 = statut
	 */
	UpdateStatut: `
		UPDATE remontee
		SET statut = $2, updated_at = NOW()
		WHERE id = $1
	`,
}
