package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrMalformedStoreData el contenido persistido no se pudo decodificar.
	// Los lectores tolerantes lo registran y lo tratan como lista vacía.
	ErrMalformedStoreData = errors.New("datos almacenados corruptos")
)
