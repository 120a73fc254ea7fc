package pets

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListAvailable(ctx context.Context) ([]Pet, error) {
	var out []Pet
	for _, p := range r.byID {
		if !p.Adopted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) CountByBreed(ctx context.Context, breedID string) (int, error) {
	n := 0
	for _, p := range r.byID {
		if p.BreedID != nil && *p.BreedID == breedID {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

type testBreedRepo struct {
	byID map[string]breeds.Breed
}

func (r *testBreedRepo) Create(ctx context.Context, b breeds.Breed) error { return nil }

func (r *testBreedRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, errRepoNotFound
	}
	return b, nil
}

func (r *testBreedRepo) List(ctx context.Context) ([]breeds.Breed, error) { return nil, nil }

func (r *testBreedRepo) ListBySpecies(ctx context.Context, speciesID string) ([]breeds.Breed, error) {
	return nil, nil
}

func (r *testBreedRepo) CountBySpecies(ctx context.Context, speciesID string) (int, error) {
	return 0, nil
}

func (r *testBreedRepo) Update(ctx context.Context, b breeds.Breed) error { return nil }
func (r *testBreedRepo) Delete(ctx context.Context, id string) error      { return nil }

func newTestService() (*Service, *testRepo, *testBreedRepo) {
	repo := newTestRepo()
	breedRepo := &testBreedRepo{byID: map[string]breeds.Breed{}}
	return NewService(repo, breedRepo), repo, breedRepo
}

func TestService_Create(t *testing.T) {
	svc, repo, breedRepo := newTestService()
	breedRepo.byID["b-1"] = breeds.Breed{ID: "b-1", Name: "Labrador", SpeciesID: "sp-1"}

	p, err := svc.Create(context.Background(), CreateInput{
		Name:        "Rex",
		Age:         3,
		BreedID:     "b-1",
		Description: "Dócil",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BreedID == nil || *p.BreedID != "b-1" {
		t.Fatalf("expected breed set, got %v", p.BreedID)
	}
	if p.Adopted {
		t.Fatal("new pet must start available")
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatal("expected pet persisted")
	}
}

func TestService_Create_BreedOptional(t *testing.T) {
	svc, _, _ := newTestService()

	p, err := svc.Create(context.Background(), CreateInput{Name: "Rex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BreedID != nil {
		t.Fatalf("expected nil breed, got %v", *p.BreedID)
	}
}

func TestService_Create_InvalidBreed(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex", BreedID: "ghost"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected nothing persisted")
	}
}

func TestService_Update_Partial(t *testing.T) {
	svc, repo, breedRepo := newTestService()
	breedRepo.byID["b-1"] = breeds.Breed{ID: "b-1", Name: "Labrador", SpeciesID: "sp-1"}
	adopterID := "a-1"
	repo.byID["p-1"] = Pet{
		ID:        "p-1",
		Name:      "Rex",
		Age:       3,
		Photo:     []byte{0x01, 0x02},
		Adopted:   true,
		AdopterID: &adopterID,
	}

	age := 4
	p, err := svc.Update(context.Background(), "p-1", UpdateInput{Age: &age})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != 4 || p.Name != "Rex" {
		t.Fatalf("expected only age changed, got %+v", p)
	}

	// Foto vazia não apaga a atual.
	p, err = svc.Update(context.Background(), "p-1", UpdateInput{Photo: nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(p.Photo, []byte{0x01, 0x02}) {
		t.Fatalf("expected photo kept, got %v", p.Photo)
	}

	p, err = svc.Update(context.Background(), "p-1", UpdateInput{Photo: []byte{0x09}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(p.Photo, []byte{0x09}) {
		t.Fatalf("expected photo replaced, got %v", p.Photo)
	}

	// O estado de adoção nunca passa pelo update.
	if !p.Adopted || p.AdopterID == nil || *p.AdopterID != "a-1" {
		t.Fatalf("expected adoption state untouched, got %+v", p)
	}
}

func TestService_Update_InvalidBreed(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byID["p-1"] = Pet{ID: "p-1", Name: "Rex"}

	breedID := "ghost"
	_, err := svc.Update(context.Background(), "p-1", UpdateInput{BreedID: &breedID})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.byID["p-1"].BreedID != nil {
		t.Fatal("expected breed unchanged")
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byID["p-1"] = Pet{ID: "p-1", Name: "Rex", Adopted: true}

	// Delete é incondicional mesmo com o pet adotado.
	if err := svc.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID["p-1"]; ok {
		t.Fatal("expected pet removed")
	}

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListAvailable(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byID["p-1"] = Pet{ID: "p-1", Name: "Rex"}
	repo.byID["p-2"] = Pet{ID: "p-2", Name: "Mia", Adopted: true}

	list, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "p-1" {
		t.Fatalf("expected only the available pet, got %+v", list)
	}
}

func TestService_SpeciesOf(t *testing.T) {
	svc, _, breedRepo := newTestService()
	breedRepo.byID["b-1"] = breeds.Breed{ID: "b-1", Name: "Labrador", SpeciesID: "sp-1"}

	breedID := "b-1"
	if got := svc.SpeciesOf(context.Background(), Pet{BreedID: &breedID}); got != "sp-1" {
		t.Fatalf("expected sp-1, got %q", got)
	}

	if got := svc.SpeciesOf(context.Background(), Pet{}); got != "" {
		t.Fatalf("expected empty species for pet without breed, got %q", got)
	}

	orphan := "ghost"
	if got := svc.SpeciesOf(context.Background(), Pet{BreedID: &orphan}); got != "" {
		t.Fatalf("expected empty species for orphan breed, got %q", got)
	}
}
