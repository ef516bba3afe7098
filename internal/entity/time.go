package entity

import "time"

// Formatos aceitos nos campos de data persistidos: timestamps RFC 3339 (com
// ou sem fração de segundo) e vencimentos como data pura "2006-01-02".
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// NowISO devolve o timestamp atual no formato persistido.
func NowISO() string {
	return time.Now().Format(time.RFC3339Nano)
}

// ParseTime tenta interpretar um campo de data persistido. Valor vazio ou
// inválido devolve ok=false: o chamador trata como "nunca vence", nunca como
// erro.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOnly trunca para meia-noite local, para comparações "vence hoje".
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
