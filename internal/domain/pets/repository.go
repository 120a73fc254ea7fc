package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListAvailable(ctx context.Context) ([]Pet, error)
	CountByBreed(ctx context.Context, breedID string) (int, error)
	Update(ctx context.Context, p Pet) error
	// Delete remove o pet incondicionalmente e arrasta junto a adoção
	// viva dele, se existir (cascade no storage).
	Delete(ctx context.Context, id string) error
}
