package localstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore fachada de persistencia de la lista de productos sobre un KeyValueStore:
// toda la lista vive serializada bajo una sola llave y se reescribe completa en cada Save.
type RecordStore struct {
	kv  repository.KeyValueStore
	key string
	log zerolog.Logger
}

// NewRecordStore construye la fachada para la llave indicada (p. ej. "inventoryTable").
func NewRecordStore(kv repository.KeyValueStore, key string, log zerolog.Logger) *RecordStore {
	return &RecordStore{kv: kv, key: key, log: log}
}

// Load lee la lista. Llave ausente, valor vacío o contenido corrupto devuelven lista vacía;
// solo los fallos del backend se propagan.
func (s *RecordStore) Load(ctx context.Context) ([]entity.Record, error) {
	payload, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.key, err)
	}
	if !found {
		return []entity.Record{}, nil
	}
	records, err := DecodeRecords(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("contenido corrupto, se usa lista vacía")
		return []entity.Record{}, nil
	}
	return records, nil
}

// Save sobrescribe la llave con la lista completa.
func (s *RecordStore) Save(ctx context.Context, records []entity.Record) error {
	payload, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		return fmt.Errorf("guardar %s: %w", s.key, err)
	}
	return nil
}
