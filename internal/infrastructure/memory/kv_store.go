package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventar/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore almacén clave/valor en memoria del proceso. Es el driver por defecto y el fake de los tests.
type KVStore struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{m: make(map[string]string)}
}

// Get devuelve el valor guardado bajo key.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Set sobrescribe el valor de key.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
