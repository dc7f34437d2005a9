package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
	"github.com/jhoicas/inventar/internal/domain/repository"
)

// UpsertOutcome indica si Upsert agregó un producto nuevo o reemplazó uno existente;
// la interfaz muestra mensajes distintos en cada caso.
type UpsertOutcome int

const (
	OutcomeInserted UpsertOutcome = iota + 1
	OutcomeUpdated
)

func (o UpsertOutcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// RecordRepository operaciones CRUD sobre la lista de productos.
// Cada operación es load → transformar → save sobre la lista completa; no hay caché entre llamadas
// ni control de concurrencia: si dos escritores se cruzan, el último Save gana.
type RecordRepository struct {
	store repository.RecordStore
	newID func() (string, error)
}

// NewRecordRepository construye el repositorio sobre el puerto de persistencia.
func NewRecordRepository(store repository.RecordStore) *RecordRepository {
	return &RecordRepository{store: store, newID: inventory.NewRecordID}
}

// List devuelve la lista completa en orden de inserción.
func (r *RecordRepository) List(ctx context.Context) ([]entity.Record, error) {
	return r.store.Load(ctx)
}

// GetByID busca un producto; found=false si no existe.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (entity.Record, bool, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		return entity.Record{}, false, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i], true, nil
	}
	return entity.Record{}, false, nil
}

// Upsert reemplaza en su posición el producto con el mismo ID o lo agrega al final.
// Un ID vacío recibe uno generado (siempre es inserción). Devuelve el registro guardado.
func (r *RecordRepository) Upsert(ctx context.Context, record entity.Record) (entity.Record, UpsertOutcome, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		return entity.Record{}, 0, err
	}

	if record.ID == "" {
		id, err := r.newID()
		if err != nil {
			return entity.Record{}, 0, err
		}
		record.ID = id
	}

	outcome := OutcomeInserted
	if i := indexOf(records, record.ID); i >= 0 {
		records[i] = record
		outcome = OutcomeUpdated
	} else {
		records = append(records, record)
	}

	if err := r.store.Save(ctx, records); err != nil {
		return entity.Record{}, 0, fmt.Errorf("upsert %s: %w", record.ID, err)
	}
	return record, outcome, nil
}

// DeleteByID elimina el primer producto con ese ID. found=false (sin escribir) si no existe.
func (r *RecordRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return false, nil
	}
	remaining := make([]entity.Record, 0, len(records)-1)
	remaining = append(remaining, records[:i]...)
	remaining = append(remaining, records[i+1:]...)
	if err := r.store.Save(ctx, remaining); err != nil {
		return false, fmt.Errorf("delete %s: %w", id, err)
	}
	return true, nil
}

// ClearAll reemplaza la lista por una vacía.
func (r *RecordRepository) ClearAll(ctx context.Context) error {
	if err := r.store.Save(ctx, []entity.Record{}); err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	return nil
}

// Filter devuelve los productos cuyo nombre o total en texto contienen query (sin distinguir mayúsculas).
// Se usa tanto para la búsqueda en pantalla como para el export.
func (r *RecordRepository) Filter(ctx context.Context, query string) ([]entity.Record, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.Filter(records, query), nil
}

func indexOf(records []entity.Record, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
