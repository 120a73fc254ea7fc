package adoptions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

// -------------------------
// Fakes in-memory
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testPetRepo struct {
	byID map[string]pets.Pet
}

func newTestPetRepo() *testPetRepo {
	return &testPetRepo{byID: map[string]pets.Pet{}}
}

func (r *testPetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testPetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testPetRepo) List(ctx context.Context) ([]pets.Pet, error)          { return nil, nil }
func (r *testPetRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) { return nil, nil }

func (r *testPetRepo) CountByBreed(ctx context.Context, breedID string) (int, error) {
	return 0, nil
}

func (r *testPetRepo) Update(ctx context.Context, p pets.Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testPetRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type testAdopterRepo struct {
	byID map[string]adopters.Adopter
}

func newTestAdopterRepo() *testAdopterRepo {
	return &testAdopterRepo{byID: map[string]adopters.Adopter{}}
}

func (r *testAdopterRepo) Create(ctx context.Context, a adopters.Adopter) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testAdopterRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	a, ok := r.byID[id]
	if !ok {
		return adopters.Adopter{}, errRepoNotFound
	}
	return a, nil
}

func (r *testAdopterRepo) List(ctx context.Context) ([]adopters.Adopter, error) { return nil, nil }
func (r *testAdopterRepo) Update(ctx context.Context, a adopters.Adopter) error { return nil }
func (r *testAdopterRepo) Delete(ctx context.Context, id string) error          { return nil }

func (r *testAdopterRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

// testAdoptionRepo aplica as operações compostas sobre o testPetRepo,
// imitando a transação dos adapters reais.
type testAdoptionRepo struct {
	byID    map[string]Adoption
	petRepo *testPetRepo
}

func newTestAdoptionRepo(petRepo *testPetRepo) *testAdoptionRepo {
	return &testAdoptionRepo{byID: map[string]Adoption{}, petRepo: petRepo}
}

func (r *testAdoptionRepo) Register(ctx context.Context, a Adoption, p pets.Pet) error {
	for _, other := range r.byID {
		if other.PetID == a.PetID {
			return fmt.Errorf("repo: adoption already exists for pet %s", a.PetID)
		}
	}
	if _, ok := r.petRepo.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.petRepo.byID[p.ID] = p
	r.byID[a.ID] = a
	return nil
}

func (r *testAdoptionRepo) Rescind(ctx context.Context, adoptionID string, p *pets.Pet) error {
	if _, ok := r.byID[adoptionID]; !ok {
		return errRepoNotFound
	}
	if p != nil {
		if _, ok := r.petRepo.byID[p.ID]; ok {
			r.petRepo.byID[p.ID] = *p
		}
	}
	delete(r.byID, adoptionID)
	return nil
}

func (r *testAdoptionRepo) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, errRepoNotFound
	}
	return a, nil
}

func (r *testAdoptionRepo) GetByPet(ctx context.Context, petID string) (Adoption, error) {
	for _, a := range r.byID {
		if a.PetID == petID {
			return a, nil
		}
	}
	return Adoption{}, errRepoNotFound
}

func (r *testAdoptionRepo) List(ctx context.Context) ([]Adoption, error) {
	out := make([]Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testAdoptionRepo) CountByAdopter(ctx context.Context, adopterID string) (int, error) {
	n := 0
	for _, a := range r.byID {
		if a.AdopterID == adopterID {
			n++
		}
	}
	return n, nil
}

func newTestService() (*Service, *testPetRepo, *testAdopterRepo, *testAdoptionRepo) {
	petRepo := newTestPetRepo()
	adopterRepo := newTestAdopterRepo()
	repo := newTestAdoptionRepo(petRepo)
	svc := NewService(repo, petRepo, adopterRepo)
	return svc, petRepo, adopterRepo, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_MarksPetAdopted(t *testing.T) {
	svc, petRepo, adopterRepo, repo := newTestService()

	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	petRepo.byID["pet-1"] = pets.Pet{ID: "pet-1", Name: "Rex"}
	adopterRepo.byID["adopter-1"] = adopters.Adopter{ID: "adopter-1", Name: "Ana"}

	a, err := svc.Register(context.Background(), "pet-1", "adopter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PetID != "pet-1" || a.AdopterID != "adopter-1" {
		t.Fatalf("unexpected adoption %+v", a)
	}

	wantDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !a.Date.Equal(wantDate) {
		t.Fatalf("expected adoption date %v, got %v", wantDate, a.Date)
	}

	p := petRepo.byID["pet-1"]
	if !p.Adopted {
		t.Fatal("expected pet marked adopted")
	}
	if p.AdopterID == nil || *p.AdopterID != "adopter-1" {
		t.Fatalf("expected pet adopter mirror set, got %v", p.AdopterID)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 adoption persisted, got %d", len(repo.byID))
	}
}

func TestService_Register_InvalidPet(t *testing.T) {
	svc, _, adopterRepo, repo := newTestService()
	adopterRepo.byID["adopter-1"] = adopters.Adopter{ID: "adopter-1", Name: "Ana"}

	_, err := svc.Register(context.Background(), "ghost", "adopter-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected no adoption persisted")
	}
}

func TestService_Register_InvalidAdopter(t *testing.T) {
	svc, petRepo, _, repo := newTestService()
	petRepo.byID["pet-1"] = pets.Pet{ID: "pet-1", Name: "Rex"}

	_, err := svc.Register(context.Background(), "pet-1", "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected no adoption persisted")
	}
	if petRepo.byID["pet-1"].Adopted {
		t.Fatal("pet must stay available")
	}
}

func TestService_Register_AlreadyAdopted_ConflictAndNoChange(t *testing.T) {
	svc, petRepo, adopterRepo, repo := newTestService()

	petRepo.byID["pet-1"] = pets.Pet{ID: "pet-1", Name: "Rex"}
	adopterRepo.byID["adopter-1"] = adopters.Adopter{ID: "adopter-1", Name: "Ana"}
	adopterRepo.byID["adopter-2"] = adopters.Adopter{ID: "adopter-2", Name: "Bia"}

	first, err := svc.Register(context.Background(), "pet-1", "adopter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Register(context.Background(), "pet-1", "adopter-2")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Falha não pode ter mexido em nada.
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 adoption, got %d", len(repo.byID))
	}
	p := petRepo.byID["pet-1"]
	if p.AdopterID == nil || *p.AdopterID != first.AdopterID {
		t.Fatal("pet mirror must still point to the first adopter")
	}
}

func TestService_Rescind_ClearsPetMirror(t *testing.T) {
	svc, petRepo, adopterRepo, repo := newTestService()

	petRepo.byID["pet-1"] = pets.Pet{ID: "pet-1", Name: "Rex"}
	adopterRepo.byID["adopter-1"] = adopters.Adopter{ID: "adopter-1", Name: "Ana"}

	a, err := svc.Register(context.Background(), "pet-1", "adopter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Rescind(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := petRepo.byID["pet-1"]
	if p.Adopted {
		t.Fatal("expected pet available again")
	}
	if p.AdopterID != nil {
		t.Fatalf("expected pet adopter mirror cleared, got %v", *p.AdopterID)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected adoption removed")
	}

	// Ciclo completo: o pet pode ser adotado de novo.
	if _, err := svc.Register(context.Background(), "pet-1", "adopter-1"); err != nil {
		t.Fatalf("expected pet adoptable again, got %v", err)
	}
}

func TestService_Rescind_UnknownAdoption(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Rescind(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Rescind_ToleratesMissingPet(t *testing.T) {
	svc, petRepo, adopterRepo, repo := newTestService()

	petRepo.byID["pet-1"] = pets.Pet{ID: "pet-1", Name: "Rex"}
	adopterRepo.byID["adopter-1"] = adopters.Adopter{ID: "adopter-1", Name: "Ana"}

	a, err := svc.Register(context.Background(), "pet-1", "adopter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pet removido por outro caminho; a adoção ainda precisa sair.
	delete(petRepo.byID, "pet-1")

	if err := svc.Rescind(context.Background(), a.ID); err != nil {
		t.Fatalf("expected rescind to tolerate missing pet, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected adoption removed")
	}
}
