package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
)

type adoptersRepo struct {
	s *Store
}

func (r *adoptersRepo) Create(ctx context.Context, a adopters.Adopter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adopter id required")
	}
	if _, exists := r.s.adopters[a.ID]; exists {
		return errors.New("adopter already exists")
	}
	r.s.adopters[a.ID] = a
	return nil
}

func (r *adoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adopters[id]
	if !ok {
		return adopters.Adopter{}, ErrNotFound
	}
	return a, nil
}

func (r *adoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adopters.Adopter, 0, len(r.s.adopters))
	for _, a := range r.s.adopters {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *adoptersRepo) Update(ctx context.Context, a adopters.Adopter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.adopters[a.ID]; !exists {
		return ErrNotFound
	}
	r.s.adopters[a.ID] = a
	return nil
}

func (r *adoptersRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.adopters[id]; !exists {
		return ErrNotFound
	}
	delete(r.s.adopters, id)
	return nil
}

func (r *adoptersRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.adopters[id]
	return ok, nil
}
