package repository

import "context"

// KeyValueStore puerto de almacenamiento clave/valor de texto plano (equivalente al localStorage del navegador).
// Set sobrescribe completamente el valor anterior; no hay versionado ni bloqueo (last write wins).
type KeyValueStore interface {
	// Get devuelve el valor y found=false si la llave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
