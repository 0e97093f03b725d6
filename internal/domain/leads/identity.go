package leads

// identityAccessor devuelve un valor de identidad si el payload lo tiene.
type identityAccessor func(payload map[string]any) (string, bool)

// identityPrecedence: RRN completo, luego front-back, luego fecha de nacimiento.
var identityPrecedence = []identityAccessor{
	fullRRN,
	splitRRN,
	birthDate,
}

// ResolveIdentity elige el único valor birth_or_rrn que se muestra en el export.
func ResolveIdentity(payload map[string]any) string {
	for _, get := range identityPrecedence {
		if v, ok := get(payload); ok {
			return v
		}
	}
	return ""
}

func fullRRN(payload map[string]any) (string, bool) {
	v := stringField(payload, "rrnFull")
	return v, v != ""
}

func splitRRN(payload map[string]any) (string, bool) {
	front := stringField(payload, "rrnFront")
	back := stringField(payload, "rrnBack")
	if front == "" || back == "" {
		return "", false
	}
	return front + "-" + back, true
}

func birthDate(payload map[string]any) (string, bool) {
	v := stringField(payload, "birth")
	return v, v != ""
}
