package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
)

type breedsRepo struct {
	s *Store
}

func (r *breedsRepo) Create(ctx context.Context, b breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("breed id required")
	}
	if _, exists := r.s.breeds[b.ID]; exists {
		return errors.New("breed already exists")
	}
	r.s.breeds[b.ID] = b
	return nil
}

func (r *breedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return breeds.Breed{}, ErrNotFound
	}
	return b, nil
}

func (r *breedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.s.breeds))
	for _, b := range r.s.breeds {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *breedsRepo) ListBySpecies(ctx context.Context, speciesID string) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]breeds.Breed, 0)
	for _, b := range r.s.breeds {
		if b.SpeciesID == speciesID {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *breedsRepo) CountBySpecies(ctx context.Context, speciesID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, b := range r.s.breeds {
		if b.SpeciesID == speciesID {
			n++
		}
	}
	return n, nil
}

func (r *breedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.breeds[b.ID]; !exists {
		return ErrNotFound
	}
	r.s.breeds[b.ID] = b
	return nil
}

func (r *breedsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.breeds[id]; !exists {
		return ErrNotFound
	}
	delete(r.s.breeds, id)
	return nil
}
