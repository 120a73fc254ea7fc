package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
	"github.com/igorjosafa/PetAdota/internal/domain/species"
)

type speciesRepo struct {
	s *Store
}

func (r *speciesRepo) CreateWithSRD(ctx context.Context, sp species.Species, srd breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(sp.ID) == "" {
		return errors.New("species id required")
	}
	if _, exists := r.s.species[sp.ID]; exists {
		return errors.New("species already exists")
	}

	r.s.species[sp.ID] = sp
	r.s.breeds[srd.ID] = srd
	return nil
}

func (r *speciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.species[id]
	if !ok {
		return species.Species{}, ErrNotFound
	}
	return sp, nil
}

func (r *speciesRepo) List(ctx context.Context) ([]species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]species.Species, 0, len(r.s.species))
	for _, sp := range r.s.species {
		out = append(out, sp)
	}

	// Mapas não têm ordem; por nome só para saída estável em dev/testes.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *speciesRepo) Update(ctx context.Context, sp species.Species) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.species[sp.ID]; !exists {
		return ErrNotFound
	}
	r.s.species[sp.ID] = sp
	return nil
}

func (r *speciesRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.species[id]; !exists {
		return ErrNotFound
	}
	delete(r.s.species, id)
	return nil
}

func (r *speciesRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.species[id]
	return ok, nil
}
