package timeparse

import "time"

// Millis es cualquier valor que sabe convertirse a epoch-millis
// (p.ej. el timestamp nativo de un backend hosteado).
type Millis interface {
	ToMillis() int64
}

// Formatos aceptados para timestamps en texto. El backfill desde el
// sistema anterior trae fechas en varios de estos.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToMillis normaliza representaciones heterogéneas de tiempo a epoch-millis.
// Todo ordenamiento temporal del sistema pasa por acá.
// Reconoce: time.Time, *time.Time, Millis, números (incluye los float64 que
// produce encoding/json), strings ISO y nil. Cualquier cosa irreconocible
// o no parseable => 0.
func ToMillis(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case time.Time:
		if t.IsZero() {
			return 0
		}
		return t.UnixMilli()
	case *time.Time:
		if t == nil || t.IsZero() {
			return 0
		}
		return t.UnixMilli()
	case Millis:
		return t.ToMillis()
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UnixMilli()
			}
		}
		return 0
	default:
		return 0
	}
}
