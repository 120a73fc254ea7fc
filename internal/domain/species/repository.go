package species

import (
	"context"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
)

type Repository interface {
	// CreateWithSRD persiste a espécie e sua raça SRD na mesma transação.
	// Nunca deve existir espécie sem a raça padrão.
	CreateWithSRD(ctx context.Context, sp Species, srd breeds.Breed) error
	GetByID(ctx context.Context, id string) (Species, error)
	List(ctx context.Context) ([]Species, error)
	Update(ctx context.Context, sp Species) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
