package leads

import (
	"encoding/json"
	"strings"
	"time"
)

const utf8BOM = "\uFEFF"

// CSVHeader es el contrato fijo de columnas del export.
var CSVHeader = []string{
	"site", "requested_at", "request_type",
	"name", "birth_or_rrn", "gender", "phone",
	"pet_breed", "pet_name", "pet_gender", "pet_birth_date", "pet_reg_number", "pet_neutered",
}

// ExportResponse es el sobre del modo JSON.
type ExportResponse struct {
	OK    bool         `json:"ok"`
	Count int          `json:"count"`
	Items []LeadRecord `json:"items"`
}

func NewExportResponse(records []LeadRecord) ExportResponse {
	if records == nil {
		records = []LeadRecord{}
	}
	return ExportResponse{OK: true, Count: len(records), Items: records}
}

// RenderJSON serializa los registros como {ok, count, items}.
func RenderJSON(records []LeadRecord) ([]byte, error) {
	return json.Marshal(NewExportResponse(records))
}

// RenderCSV genera el texto delimitado con BOM para compatibilidad con Excel.
// Las filas se separan con "\n".
func RenderCSV(records []LeadRecord) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeCSVRow(&b, CSVHeader)
	for _, r := range records {
		b.WriteByte('\n')
		writeCSVRow(&b, r.Row())
	}
	return []byte(b.String())
}

// Row devuelve los valores en el orden de CSVHeader.
func (r LeadRecord) Row() []string {
	return []string{
		r.Site, r.RequestedAt, r.RequestType,
		r.Name, r.BirthOrRRN, r.Gender, r.Phone,
		r.PetBreed, r.PetName, r.PetGender, r.PetBirthDate, r.PetRegNumber, r.PetNeutered,
	}
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(f))
	}
}

// escapeCSV entrecomilla si hay coma, comilla o salto de línea, duplicando comillas internas.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportFilename: leads-YYYY-MM-DD.csv con la fecha UTC.
func ExportFilename(now time.Time) string {
	return "leads-" + now.UTC().Format("2006-01-02") + ".csv"
}
