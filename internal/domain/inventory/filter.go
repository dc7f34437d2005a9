package inventory

import (
	"strings"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// Matches búsqueda sin distinguir mayúsculas sobre el nombre del producto o el total en texto ("10.5").
func Matches(r entity.Record, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.ProductName), q) ||
		strings.Contains(r.TotalPrice.String(), q)
}

// Filter devuelve, en el mismo orden, los registros que coinciden con query. Query vacía = todos.
func Filter(records []entity.Record, query string) []entity.Record {
	if query == "" {
		return records
	}
	out := make([]entity.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}
