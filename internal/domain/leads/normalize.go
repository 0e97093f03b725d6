package leads

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidType  = fmt.Errorf("%w: invalid type", ErrInvalidInput)
)

// requestedAtLayout reproduce el ISO-8601 con milisegundos que usan los formularios.
const requestedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// RawSubmission es el cuerpo JSON tal como llega del formulario.
type RawSubmission map[string]any

// Normalize convierte el input crudo en una Submission canónica.
// type debe ser exactamente "phone" u "online"; el resto es opcional.
// El teléfono se reenvía sin reformatear.
func Normalize(raw RawSubmission, now time.Time) (Submission, error) {
	typ, _ := raw["type"].(string)
	rt := RequestType(typ)
	if !rt.Valid() {
		return Submission{}, ErrInvalidType
	}

	s := Submission{
		Type:         rt,
		Site:         stringField(raw, "site"),
		Name:         stringField(raw, "name"),
		Phone:        stringField(raw, "phone"),
		Gender:       stringField(raw, "gender"),
		Birth:        stringField(raw, "birth"),
		RRNFront:     stringField(raw, "rrnFront"),
		RRNBack:      stringField(raw, "rrnBack"),
		RRNFull:      stringField(raw, "rrnFull"),
		PetBreed:     stringField(raw, "petBreed"),
		PetName:      stringField(raw, "petName"),
		PetGender:    stringField(raw, "petGender"),
		PetBirthDate: stringField(raw, "petBirthDate"),
		PetRegNumber: stringField(raw, "petRegNumber"),
		PetNeutered:  stringField(raw, "petNeutered"),
		Notes:        stringField(raw, "notes"),
		RequestedAt:  stringField(raw, "requestedAt"),
	}
	if s.Site == "" {
		s.Site = DefaultSite
	}
	if s.RequestedAt == "" {
		s.RequestedAt = now.UTC().Format(requestedAtLayout)
	}
	return s, nil
}
