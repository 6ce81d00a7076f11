package dogs

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando un id bien formado no
// corresponde a ningún registro. Distinto de ErrInvalidID (ver service).
var ErrNotFound = errors.New("dog not found")

type Repository interface {
	Create(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)

	// Search filtra por substring de name (case-insensitive) cuando
	// namePattern no es vacío y devuelve a lo sumo limit registros.
	// El orden es el que dé el store; los callers no deben depender de él.
	Search(ctx context.Context, namePattern string, limit int) ([]Dog, error)
}
