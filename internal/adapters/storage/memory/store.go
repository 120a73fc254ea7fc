// Package memory guarda tudo em mapas protegidos por um único RWMutex.
// Um lock só para o store inteiro deixa as operações compostas
// (espécie+SRD, registrar/desfazer adoção, delete de pet com cascade)
// atômicas do jeito que os backends SQL conseguem com transação.
package memory

import (
	"errors"
	"sync"

	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
	"github.com/igorjosafa/PetAdota/internal/domain/adoptions"
	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
	"github.com/igorjosafa/PetAdota/internal/domain/species"
)

var (
	ErrNotFound = errors.New("not found")
)

type Store struct {
	mu sync.RWMutex

	species   map[string]species.Species
	breeds    map[string]breeds.Breed
	pets      map[string]pets.Pet
	adopters  map[string]adopters.Adopter
	adoptions map[string]adoptions.Adoption
}

func NewStore() *Store {
	return &Store{
		species:   make(map[string]species.Species),
		breeds:    make(map[string]breeds.Breed),
		pets:      make(map[string]pets.Pet),
		adopters:  make(map[string]adopters.Adopter),
		adoptions: make(map[string]adoptions.Adoption),
	}
}

func (s *Store) Species() species.Repository     { return &speciesRepo{s} }
func (s *Store) Breeds() breeds.Repository       { return &breedsRepo{s} }
func (s *Store) Pets() pets.Repository           { return &petsRepo{s} }
func (s *Store) Adopters() adopters.Repository   { return &adoptersRepo{s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionsRepo{s} }
