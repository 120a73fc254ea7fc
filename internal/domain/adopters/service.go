package adopters

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
	repo      Repository
	adoptions AdoptionCounter
}

func NewService(repo Repository, adoptions AdoptionCounter) *Service {
	return &Service{
		repo:      repo,
		adoptions: adoptions,
	}
}

type CreateInput struct {
	Name       string
	Phone      string
	Email      string
	TaxpayerID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Adopter, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Adopter{}, fmt.Errorf("adopter name is required: %w", ErrInvalidInput)
	}
	if err := validateEmail(in.Email); err != nil {
		return Adopter{}, err
	}

	a := Adopter{
		ID:         uuid.NewString(),
		Name:       name,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		TaxpayerID: strings.TrimSpace(in.TaxpayerID),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

type UpdateInput struct {
	Name       *string
	Phone      *string
	Email      *string
	TaxpayerID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Adopter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adopter{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adopter{}, fmt.Errorf("adopter %s: %w", id, ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Adopter{}, fmt.Errorf("adopter name is required: %w", ErrInvalidInput)
		}
		a.Name = name
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return Adopter{}, err
		}
		a.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		a.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.TaxpayerID != nil {
		a.TaxpayerID = strings.TrimSpace(*in.TaxpayerID)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

// Delete remove o adotante somente se ele não tem adoções registradas.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("adopter %s: %w", id, ErrNotFound)
	}

	n, err := s.adoptions.CountByAdopter(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("cannot delete adopter %s: adoptions exist: %w", id, ErrConflict)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adopter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Adopter, error) {
	return s.repo.List(ctx)
}

// Email é opcional; quando presente, a única exigência é conter "@".
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email: %w", ErrInvalidInput)
	}
	return nil
}
