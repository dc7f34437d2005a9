package repository

import (
	"context"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// RecordStore define el puerto de persistencia de la lista completa de productos (un solo blob).
// Load es tolerante: llave ausente, vacía o corrupta devuelve lista vacía sin error.
type RecordStore interface {
	Load(ctx context.Context) ([]entity.Record, error)
	Save(ctx context.Context, records []entity.Record) error
}
