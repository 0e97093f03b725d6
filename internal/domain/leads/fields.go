package leads

import (
	"strconv"
	"strings"
)

// stringField lee una clave de un objeto JSON genérico y la devuelve como string recortado.
// Números y booleanos se formatean; null, ausentes y valores compuestos dan "".
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
