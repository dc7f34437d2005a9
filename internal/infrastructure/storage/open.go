// Package storage elige y abre el backend clave/valor configurado (STORE_DRIVER).
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/inventar/internal/domain/repository"
	"github.com/jhoicas/inventar/internal/infrastructure/memory"
	"github.com/jhoicas/inventar/internal/infrastructure/postgres"
	"github.com/jhoicas/inventar/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventar/pkg/config"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open abre el almacén. El io.Closer devuelto libera la conexión (no-op en memoria).
func Open(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: redis: %w", err)
		}
		return redisstore.NewKVStore(client), client, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: postgres: %w", err)
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("storage: postgres: %w", err)
		}
		return kv, closerFunc(func() error { pool.Close(); return nil }), nil
	case config.StoreDriverMemory:
		return memory.NewKVStore(), closerFunc(func() error { return nil }), nil
	default:
		return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
	}
}
