package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"isti-portal-core/internal/modules/classes/dto"
)

// utf8BOM permet à Excel d'ouvrir le fichier avec les accents corrects
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const dateFormat = "02/01/2006"

var csvHeader = []string{
	"Matricule",
	"Nom",
	"Email",
	"Téléphone",
	"Date de naissance",
	"Date d'inscription",
	"Statut",
	"Nombre de notes",
	"Moyenne",
	"Taux de présence (%)",
}

// RenderRosterCSV sérialise un effectif en CSV. Aucun horodatage de
// génération n'est inclus : deux exports du même effectif produisent des
// octets identiques.
func RenderRosterCSV(roster []dto.RosterRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, r := range roster {
		naissance := ""
		if r.DateNaissance != nil {
			naissance = r.DateNaissance.Format(dateFormat)
		}

		record := []string{
			r.Matricule,
			r.Nom,
			r.Email,
			r.Telephone,
			naissance,
			r.DateInscription.Format(dateFormat),
			r.Statut,
			strconv.Itoa(r.NbNotes),
			strconv.FormatFloat(r.Moyenne, 'f', 2, 64),
			strconv.FormatFloat(r.TauxPresence, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
