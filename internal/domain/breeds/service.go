package breeds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type Service struct {
	repo    Repository
	species SpeciesDirectory
	pets    PetCounter
}

func NewService(repo Repository, species SpeciesDirectory, pets PetCounter) *Service {
	return &Service{
		repo:    repo,
		species: species,
		pets:    pets,
	}
}

type CreateInput struct {
	Name      string
	SpeciesID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Breed, error) {
	name := strings.TrimSpace(in.Name)
	speciesID := strings.TrimSpace(in.SpeciesID)

	if name == "" {
		return Breed{}, fmt.Errorf("breed name is required: %w", ErrInvalidInput)
	}
	if speciesID == "" {
		return Breed{}, fmt.Errorf("species id is required: %w", ErrInvalidInput)
	}

	ok, err := s.species.Exists(ctx, speciesID)
	if err != nil {
		return Breed{}, err
	}
	if !ok {
		return Breed{}, fmt.Errorf("invalid species %s: %w", speciesID, ErrInvalidInput)
	}

	b := Breed{
		ID:        uuid.NewString(),
		Name:      name,
		SpeciesID: speciesID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Breed{}, err
	}
	return b, nil
}

// UpdateInput usa ponteiros: nil = não tocar no campo.
type UpdateInput struct {
	Name      *string
	SpeciesID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breed{}, ErrInvalidInput
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Breed{}, fmt.Errorf("breed %s: %w", id, ErrNotFound)
	}

	if in.SpeciesID != nil {
		speciesID := strings.TrimSpace(*in.SpeciesID)
		ok, err := s.species.Exists(ctx, speciesID)
		if err != nil {
			return Breed{}, err
		}
		if !ok {
			return Breed{}, fmt.Errorf("invalid species %s: %w", speciesID, ErrInvalidInput)
		}
		b.SpeciesID = speciesID
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Breed{}, fmt.Errorf("breed name is required: %w", ErrInvalidInput)
		}
		b.Name = name
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return Breed{}, err
	}
	return b, nil
}

// Delete remove a raça somente se nenhum pet a referencia.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("breed %s: %w", id, ErrNotFound)
	}

	n, err := s.pets.CountByBreed(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("cannot delete breed %s: pets exist: %w", id, ErrConflict)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBySpecies(ctx context.Context, speciesID string) ([]Breed, error) {
	speciesID = strings.TrimSpace(speciesID)
	if speciesID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySpecies(ctx, speciesID)
}
