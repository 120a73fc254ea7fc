package breeds

import "context"

type Repository interface {
	Create(ctx context.Context, b Breed) error
	GetByID(ctx context.Context, id string) (Breed, error)
	List(ctx context.Context) ([]Breed, error)
	ListBySpecies(ctx context.Context, speciesID string) ([]Breed, error)
	CountBySpecies(ctx context.Context, speciesID string) (int, error)
	Update(ctx context.Context, b Breed) error
	Delete(ctx context.Context, id string) error
}

// SpeciesDirectory é o mínimo que este módulo precisa saber sobre espécies.
// Evita acoplar breeds -> species (species já importa breeds pela raça SRD).
type SpeciesDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// PetCounter responde quantos pets referenciam uma raça (guarda de deleção).
type PetCounter interface {
	CountByBreed(ctx context.Context, breedID string) (int, error)
}
