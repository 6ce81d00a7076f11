package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pedigree-organizer/internal/domain/dogs"
)

// dogRepo es el store in-memory: modo degradado sin DATABASE_URL y tests.
type dogRepo struct {
	mu   sync.RWMutex
	byID map[string]dogs.Dog
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) Search(ctx context.Context, namePattern string, limit int) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pattern := strings.ToLower(strings.TrimSpace(namePattern))

	// Sin ordenar a propósito: el contrato dice orden del store, y el orden
	// de iteración del map evita que algún caller dependa de uno estable.
	out := make([]dogs.Dog, 0)
	for _, d := range r.byID {
		if len(out) >= limit {
			break
		}
		if pattern != "" && !strings.Contains(strings.ToLower(d.Name), pattern) {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}
