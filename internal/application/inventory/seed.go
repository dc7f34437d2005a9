package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventar/internal/domain/inventory"
	"github.com/jhoicas/inventar/internal/domain/repository"
)

// SeedPolicy qué hacer con los datos semilla descargados.
type SeedPolicy string

const (
	// SeedDiscard descarga el documento pero lo ignora y deja la tabla vacía (comportamiento histórico).
	SeedDiscard SeedPolicy = "discard"
	// SeedApply guarda los registros descargados si la lista sigue vacía.
	SeedApply SeedPolicy = "apply"
)

// SeedResult resumen del bootstrap.
type SeedResult struct {
	Fetched bool // se intentó y se obtuvo el documento
	Failed  bool // la descarga o el formato fallaron
	Applied int  // registros guardados (0 con SeedDiscard)
}

// Label resume el resultado para métricas: error, applied, fetched o skipped.
func (r SeedResult) Label() string {
	switch {
	case r.Failed:
		return "error"
	case r.Applied > 0:
		return "applied"
	case r.Fetched:
		return "fetched"
	default:
		return "skipped"
	}
}

// Bootstrapper llena la lista vacía con datos semilla en el primer arranque.
type Bootstrapper struct {
	store   repository.RecordStore
	fetcher SeedFetcher
	policy  SeedPolicy
	log     zerolog.Logger
}

// NewBootstrapper construye el bootstrap. fetcher nil desactiva la descarga.
func NewBootstrapper(store repository.RecordStore, fetcher SeedFetcher, policy SeedPolicy, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, fetcher: fetcher, policy: policy, log: log}
}

// Run descarga la semilla solo si no hay productos guardados. Los fallos de red o de formato
// se registran y no se propagan: la aplicación sigue con la lista vacía.
func (b *Bootstrapper) Run(ctx context.Context) (SeedResult, error) {
	records, err := b.store.Load(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if len(records) > 0 || b.fetcher == nil {
		return SeedResult{}, nil
	}

	seed, err := b.fetcher.FetchSeed(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("problema al descargar los datos semilla")
		return SeedResult{Failed: true}, nil
	}
	res := SeedResult{Fetched: true}

	if b.policy != SeedApply || len(seed) == 0 {
		b.log.Info().Int("records", len(seed)).Str("policy", string(b.policy)).Msg("datos semilla ignorados")
		return res, nil
	}

	// Releer: otro escritor pudo guardar mientras se descargaba.
	current, err := b.store.Load(ctx)
	if err != nil {
		return res, err
	}
	if len(current) > 0 {
		return res, nil
	}
	for i := range seed {
		if seed[i].ID != "" {
			continue
		}
		id, err := inventory.NewRecordID()
		if err != nil {
			return res, err
		}
		seed[i].ID = id
	}
	if err := b.store.Save(ctx, seed); err != nil {
		return res, err
	}
	res.Applied = len(seed)
	b.log.Info().Int("records", res.Applied).Msg("datos semilla aplicados")
	return res, nil
}
