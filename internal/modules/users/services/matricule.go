package services

import "fmt"

// FormatMatricule construit un matricule ISTI-AAAA-NNNN
func FormatMatricule(annee, suffixe int) string {
	return fmt.Sprintf("ISTI-%04d-%04d", annee, suffixe)
}

// MatriculePattern motif LIKE des matricules d'une année
func MatriculePattern(annee int) string {
	return fmt.Sprintf("ISTI-%04d-%%", annee)
}
