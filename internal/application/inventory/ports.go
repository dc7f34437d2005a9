package inventory

import (
	"context"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// SeedFetcher obtiene los datos semilla (documento JSON externo) para el primer arranque.
type SeedFetcher interface {
	FetchSeed(ctx context.Context) ([]entity.Record, error)
}
