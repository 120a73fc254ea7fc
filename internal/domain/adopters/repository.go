package adopters

import "context"

type Repository interface {
	Create(ctx context.Context, a Adopter) error
	GetByID(ctx context.Context, id string) (Adopter, error)
	List(ctx context.Context) ([]Adopter, error)
	Update(ctx context.Context, a Adopter) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// AdoptionCounter responde quantas adoções vivas referenciam o adotante.
// Declarado aqui para não acoplar adopters -> adoptions.
type AdoptionCounter interface {
	CountByAdopter(ctx context.Context, adopterID string) (int, error)
}
