package leads

import (
	"strings"
	"time"

	"pet-insurance-leads/internal/ports/tickets"
)

// Decode invierte Encode para un ticket. Nunca falla: todo lo que falta se rellena
// con "" (o "N/A" para site) para que el export tenga siempre las mismas columnas.
func Decode(t tickets.Ticket) LeadRecord {
	payload := ExtractPayload(t.Body)

	site := firstNonEmpty(pickLabel(t.Labels, labelPrefixSite), stringField(payload, "site"), MissingSite)
	typ := firstNonEmpty(pickLabel(t.Labels, labelPrefixType), stringField(payload, "type"))

	requestedAt := stringField(payload, "requestedAt")
	if requestedAt == "" && !t.CreatedAt.IsZero() {
		requestedAt = t.CreatedAt.UTC().Format(time.RFC3339)
	}

	return LeadRecord{
		Site:         site,
		RequestedAt:  FormatKST(requestedAt),
		RequestType:  RequestType(typ).ExportLabel(),
		Name:         stringField(payload, "name"),
		BirthOrRRN:   ResolveIdentity(payload),
		Gender:       stringField(payload, "gender"),
		Phone:        stringField(payload, "phone"),
		PetBreed:     stringField(payload, "petBreed"),
		PetName:      stringField(payload, "petName"),
		PetGender:    stringField(payload, "petGender"),
		PetBirthDate: stringField(payload, "petBirthDate"),
		PetRegNumber: stringField(payload, "petRegNumber"),
		PetNeutered:  stringField(payload, "petNeutered"),
	}
}

// DecodeAll decodifica cada ticket de forma independiente, conservando el orden.
func DecodeAll(ts []tickets.Ticket) []LeadRecord {
	out := make([]LeadRecord, 0, len(ts))
	for _, t := range ts {
		out = append(out, Decode(t))
	}
	return out
}

// pickLabel devuelve el valor de la primera etiqueta con el prefijo dado.
func pickLabel(labels []string, prefix string) string {
	for _, l := range labels {
		if strings.HasPrefix(l, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(l, prefix))
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
