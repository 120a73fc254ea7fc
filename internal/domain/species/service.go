package species

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
	ErrConflict     = errors.New("conflict")
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

// Create salva a espécie e já cria a raça SRD vinculada a ela.
// As duas escritas acontecem numa única transação do repositório para
// não deixar espécie órfã sem raça padrão.
func (s *Service) Create(ctx context.Context, name string) (Species, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Species{}, fmt.Errorf("species name is required: %w", ErrInvalidInput)
	}

	sp := Species{
		ID:   uuid.NewString(),
		Name: name,
	}
	srd := breeds.Breed{
		ID:        uuid.NewString(),
		Name:      breeds.SRDName,
		SpeciesID: sp.ID,
	}

	if err := s.repo.CreateWithSRD(ctx, sp, srd); err != nil {
		return Species{}, err
	}
	return sp, nil
}

type UpdateInput struct {
	Name *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Species, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Species{}, ErrInvalidInput
	}

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Species{}, fmt.Errorf("species %s: %w", id, ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Species{}, fmt.Errorf("species name is required: %w", ErrInvalidInput)
		}
		sp.Name = name
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		return Species{}, err
	}
	return sp, nil
}

// Delete remove a espécie somente se nenhuma raça a referencia.
// Como toda espécie nasce com a SRD, na prática é preciso apagar as
// raças primeiro (e elas só saem sem pets associados).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("species %s: %w", id, ErrNotFound)
	}

	n, err := s.breedRepo.CountBySpecies(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("cannot delete species %s: breeds exist: %w", id, ErrConflict)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Species, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Species, error) {
	return s.repo.List(ctx)
}
