package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo      Repository
	breedRepo breeds.Repository
}

func NewService(repo Repository, breedRepo breeds.Repository) *Service {
	return &Service{
		repo:      repo,
		breedRepo: breedRepo,
	}
}

type CreateInput struct {
	Name        string
	Age         int
	BreedID     string
	Description string
	Photo       []byte
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, fmt.Errorf("pet name is required: %w", ErrInvalidInput)
	}

	var breedID *string
	if id := strings.TrimSpace(in.BreedID); id != "" {
		if _, err := s.breedRepo.GetByID(ctx, id); err != nil {
			return Pet{}, fmt.Errorf("invalid breed %s: %w", id, ErrInvalidInput)
		}
		breedID = &id
	}

	p := Pet{
		ID:          uuid.NewString(),
		Name:        name,
		BreedID:     breedID,
		Age:         in.Age,
		Photo:       in.Photo,
		Description: strings.TrimSpace(in.Description),
		Adopted:     false,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	Name        *string
	Age         *int
	BreedID     *string
	Description *string
	Photo       []byte
}

// Update aplica campo a campo; campo omitido fica como está.
// Foto vazia é ignorada (só upload não-vazio substitui a atual).
// Adopted/AdopterID não passam por aqui: são do motor de adoções.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, fmt.Errorf("pet %s: %w", id, ErrNotFound)
	}

	if in.BreedID != nil {
		breedID := strings.TrimSpace(*in.BreedID)
		if _, err := s.breedRepo.GetByID(ctx, breedID); err != nil {
			return Pet{}, fmt.Errorf("invalid breed %s: %w", breedID, ErrInvalidInput)
		}
		p.BreedID = &breedID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, fmt.Errorf("pet name is required: %w", ErrInvalidInput)
		}
		p.Name = name
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if len(in.Photo) > 0 {
		p.Photo = in.Photo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete é incondicional: a adoção viva do pet (se houver) sai junto.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("pet %s: %w", id, ErrNotFound)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// ListAvailable lista os pets com Adopted == false.
func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAvailable(ctx)
}

// SpeciesOf deriva a espécie do pet através da raça; "" se o pet não
// tem raça ou a raça ficou órfã.
func (s *Service) SpeciesOf(ctx context.Context, p Pet) string {
	if p.BreedID == nil {
		return ""
	}
	b, err := s.breedRepo.GetByID(ctx, *p.BreedID)
	if err != nil {
		return ""
	}
	return b.SpeciesID
}
