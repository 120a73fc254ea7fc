package adoptions

import (
	"context"

	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

// Repository é o lado transacional do motor de adoções: as operações
// compostas gravam a adoção e o pet espelhado num all-or-nothing. O
// storage também é a última defesa contra corrida no registro (unique
// em adoptions.pet_id).
type Repository interface {
	// Register persiste a adoção e o pet atualizado na mesma transação.
	Register(ctx context.Context, a Adoption, p pets.Pet) error
	// Rescind apaga a adoção e, se p != nil, persiste o pet com o
	// estado de adoção limpo, na mesma transação.
	Rescind(ctx context.Context, adoptionID string, p *pets.Pet) error

	GetByID(ctx context.Context, id string) (Adoption, error)
	GetByPet(ctx context.Context, petID string) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
	CountByAdopter(ctx context.Context, adopterID string) (int, error)
}
