package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Service é o motor de adoções: dono da máquina de estados
// Available -> Adopted -> Available de cada pet.
type Service struct {
	repo        Repository
	petRepo     pets.Repository
	adopterRepo adopters.Repository
	now         func() time.Time
}

func NewService(repo Repository, petRepo pets.Repository, adopterRepo adopters.Repository) *Service {
	return &Service{
		repo:        repo,
		petRepo:     petRepo,
		adopterRepo: adopterRepo,
		now:         time.Now,
	}
}

// Register marca o pet como adotado e cria o registro de adoção com a
// data de hoje, tudo numa transação só. Pet já adotado é Conflict, não
// entra em fila nem se repete.
func (s *Service) Register(ctx context.Context, petID, adopterID string) (Adoption, error) {
	petID = strings.TrimSpace(petID)
	adopterID = strings.TrimSpace(adopterID)

	if petID == "" || adopterID == "" {
		return Adoption{}, fmt.Errorf("pet id and adopter id are required: %w", ErrInvalidInput)
	}

	p, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return Adoption{}, fmt.Errorf("invalid pet %s: %w", petID, ErrNotFound)
	}

	ok, err := s.adopterRepo.Exists(ctx, adopterID)
	if err != nil {
		return Adoption{}, err
	}
	if !ok {
		return Adoption{}, fmt.Errorf("invalid adopter %s: %w", adopterID, ErrNotFound)
	}

	if p.Adopted {
		return Adoption{}, fmt.Errorf("pet %s already adopted: %w", petID, ErrConflict)
	}

	p.Adopted = true
	p.AdopterID = &adopterID

	a := Adoption{
		ID:        uuid.NewString(),
		PetID:     petID,
		AdopterID: adopterID,
		Date:      s.now().UTC().Truncate(24 * time.Hour),
	}

	if err := s.repo.Register(ctx, a, p); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

// Rescind desfaz a adoção: limpa o espelho no pet e apaga o registro.
// O pet pode já ter sido removido por outro caminho; nesse caso a
// adoção sai sozinha, sem erro.
func (s *Service) Rescind(ctx context.Context, adoptionID string) error {
	adoptionID = strings.TrimSpace(adoptionID)
	if adoptionID == "" {
		return ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, adoptionID)
	if err != nil {
		return fmt.Errorf("invalid adoption %s: %w", adoptionID, ErrNotFound)
	}

	var pp *pets.Pet
	if p, err := s.petRepo.GetByID(ctx, a.PetID); err == nil {
		p.Adopted = false
		p.AdopterID = nil
		pp = &p
	}

	return s.repo.Rescind(ctx, a.ID, pp)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}
