package adopters

import (
	"context"
	"errors"
	"testing"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Adopter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Adopter{}}
}

func (r *testRepo) Create(ctx context.Context, a Adopter) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adopter, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adopter{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Adopter, error) {
	out := make([]Adopter, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Adopter) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type testAdoptionCounter struct {
	byAdopter map[string]int
}

func (c *testAdoptionCounter) CountByAdopter(ctx context.Context, adopterID string) (int, error) {
	return c.byAdopter[adopterID], nil
}

func newTestService() (*Service, *testRepo, *testAdoptionCounter) {
	repo := newTestRepo()
	counter := &testAdoptionCounter{byAdopter: map[string]int{}}
	return NewService(repo, counter), repo, counter
}

func TestService_Create(t *testing.T) {
	svc, repo, _ := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{
		Name:       "  Ana  ",
		Phone:      "11 99999-0000",
		Email:      "ana@example.com",
		TaxpayerID: "123.456.789-00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatal("expected adopter persisted")
	}
}

func TestService_Create_EmailOptionalButValidated(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create(context.Background(), CreateInput{Name: "Ana"}); err != nil {
		t.Fatalf("expected empty email accepted, got %v", err)
	}

	_, err := svc.Create(context.Background(), CreateInput{Name: "Bia", Email: "sem-arroba"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_BlankName(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Name: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected nothing persisted")
	}
}

func TestService_Update_Partial(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.byID["a-1"] = Adopter{ID: "a-1", Name: "Ana", Phone: "11 1111", Email: "ana@example.com"}

	phone := "11 2222"
	a, err := svc.Update(context.Background(), "a-1", UpdateInput{Phone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Phone != "11 2222" {
		t.Fatalf("expected phone updated, got %q", a.Phone)
	}
	if a.Name != "Ana" || a.Email != "ana@example.com" {
		t.Fatalf("expected other fields untouched, got %+v", a)
	}

	bad := "sem-arroba"
	_, err = svc.Update(context.Background(), "a-1", UpdateInput{Email: &bad})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.byID["a-1"].Email != "ana@example.com" {
		t.Fatal("expected email unchanged after failed update")
	}
}

func TestService_Update_Unknown(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), "ghost", UpdateInput{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_GuardedByAdoptions(t *testing.T) {
	svc, repo, counter := newTestService()
	repo.byID["a-1"] = Adopter{ID: "a-1", Name: "Ana"}
	counter.byAdopter["a-1"] = 1

	err := svc.Delete(context.Background(), "a-1")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, ok := repo.byID["a-1"]; !ok {
		t.Fatal("expected adopter kept")
	}

	counter.byAdopter["a-1"] = 0
	if err := svc.Delete(context.Background(), "a-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID["a-1"]; ok {
		t.Fatal("expected adopter removed")
	}
}

func TestService_Delete_Unknown(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
