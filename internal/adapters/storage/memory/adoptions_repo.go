package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/adoptions"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

type adoptionsRepo struct {
	s *Store
}

// Register grava pet e adoção sob o mesmo lock. A checagem de pet_id
// único aqui cumpre o papel da constraint UNIQUE dos backends SQL.
func (r *adoptionsRepo) Register(ctx context.Context, a adoptions.Adoption, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.s.adoptions[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	for _, other := range r.s.adoptions {
		if other.PetID == a.PetID {
			return fmt.Errorf("adoption already exists for pet %s", a.PetID)
		}
	}
	if _, exists := r.s.pets[p.ID]; !exists {
		return ErrNotFound
	}

	r.s.pets[p.ID] = p
	r.s.adoptions[a.ID] = a
	return nil
}

func (r *adoptionsRepo) Rescind(ctx context.Context, adoptionID string, p *pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.adoptions[adoptionID]; !exists {
		return ErrNotFound
	}

	if p != nil {
		if _, exists := r.s.pets[p.ID]; exists {
			r.s.pets[p.ID] = *p
		}
	}

	delete(r.s.adoptions, adoptionID)
	return nil
}

func (r *adoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adoptions[id]
	if !ok {
		return adoptions.Adoption{}, ErrNotFound
	}
	return a, nil
}

func (r *adoptionsRepo) GetByPet(ctx context.Context, petID string) (adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.adoptions {
		if a.PetID == petID {
			return a, nil
		}
	}
	return adoptions.Adoption{}, ErrNotFound
}

func (r *adoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.s.adoptions))
	for _, a := range r.s.adoptions {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *adoptionsRepo) CountByAdopter(ctx context.Context, adopterID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, a := range r.s.adoptions {
		if a.AdopterID == adopterID {
			n++
		}
	}
	return n, nil
}
