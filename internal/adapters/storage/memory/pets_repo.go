package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

type petsRepo struct {
	s *Store
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		out = append(out, p)
	}

	sortPets(out)
	return out, nil
}

func (r *petsRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if !p.Adopted {
			out = append(out, p)
		}
	}

	sortPets(out)
	return out, nil
}

func (r *petsRepo) CountByBreed(ctx context.Context, breedID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.pets {
		if p.BreedID != nil && *p.BreedID == breedID {
			n++
		}
	}
	return n, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; !exists {
		return ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

// Delete arrasta junto a adoção viva do pet, espelhando o ON DELETE
// CASCADE dos backends SQL.
func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[id]; !exists {
		return ErrNotFound
	}
	delete(r.s.pets, id)

	for aid, a := range r.s.adoptions {
		if a.PetID == id {
			delete(r.s.adoptions, aid)
		}
	}
	return nil
}

func sortPets(out []pets.Pet) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
}
