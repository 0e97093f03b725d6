package leads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"pet-insurance-leads/internal/ports/tickets"
)

const (
	fenceOpen  = "```json\n"
	fenceClose = "\n```"
)

// Encode mapea una Submission a un borrador de ticket de forma determinista.
func Encode(s Submission) (tickets.Draft, error) {
	body, err := EncodeBody(s)
	if err != nil {
		return tickets.Draft{}, err
	}
	return tickets.Draft{
		Title:  Title(s),
		Body:   body,
		Labels: Labels(s),
	}, nil
}

// Title: "[<tipo>] <nombre>(<mascota>) / <site>".
func Title(s Submission) string {
	pet := s.PetName
	if pet == "" {
		pet = PetNamePending
	}
	return fmt.Sprintf("[%s] %s(%s) / %s", s.Type.TitleLabel(), s.Name, pet, s.Site)
}

// Labels devuelve exactamente una etiqueta type: y una site:.
func Labels(s Submission) []string {
	return []string{
		labelPrefixType + string(s.Type),
		labelPrefixSite + s.Site,
	}
}

// EncodeBody serializa la Submission como único bloque ```json del cuerpo.
func EncodeBody(s Submission) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return fenceOpen + strings.TrimRight(buf.String(), "\n") + fenceClose, nil
}
