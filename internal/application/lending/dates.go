package lending

import "time"

// Formatos de fecha aceptados en borrowedDate/returnedDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate interpreta una fecha de la API; vacía devuelve def. Error si no
// coincide con ningún formato aceptado.
func parseDate(raw string, def time.Time) (time.Time, error) {
	if raw == "" {
		return def, nil
	}
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
