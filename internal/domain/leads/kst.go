package leads

import (
	"strings"
	"time"
)

var kst = time.FixedZone("KST", 9*60*60)

const kstLayout = "2006-01-02 15:04:05"

// FormatKST convierte un instante RFC3339 a hora civil UTC+9, truncada a segundos.
// Vacío devuelve vacío; un valor que no parsea se devuelve sin tocar.
func FormatKST(ts string) string {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.In(kst).Truncate(time.Second).Format(kstLayout)
}
