package sqlite

import (
	"context"
	"database/sql"

	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, breed_id, age, photo, description, adopted, adopter_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID,
		p.Name,
		toNullString(p.BreedID),
		p.Age,
		p.Photo,
		p.Description,
		boolToInt(p.Adopted),
		toNullString(p.AdopterID),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, breed_id, age, photo, description, adopted, adopter_id
		FROM pets
		WHERE id = ?
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.queryPets(ctx, `
		SELECT id, name, breed_id, age, photo, description, adopted, adopter_id
		FROM pets
		ORDER BY name ASC
	`)
}

func (r *PetsRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	return r.queryPets(ctx, `
		SELECT id, name, breed_id, age, photo, description, adopted, adopter_id
		FROM pets
		WHERE adopted = 0
		ORDER BY name ASC
	`)
}

func (r *PetsRepo) CountByBreed(ctx context.Context, breedID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM pets WHERE breed_id = ?
	`, breedID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = ?, breed_id = ?, age = ?, photo = ?,
		    description = ?, adopted = ?, adopter_id = ?
		WHERE id = ?
	`,
		p.Name,
		toNullString(p.BreedID),
		p.Age,
		p.Photo,
		p.Description,
		boolToInt(p.Adopted),
		toNullString(p.AdopterID),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete depende do foreign_keys(1) ligado no Open para o cascade de
// adoptions.pet_id funcionar.
func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets WHERE id = ?
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) queryPets(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var breedID, adopterID sql.NullString
	var adopted int
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&breedID,
		&p.Age,
		&p.Photo,
		&p.Description,
		&adopted,
		&adopterID,
	); err != nil {
		return pets.Pet{}, err
	}
	p.BreedID = fromNullString(breedID)
	p.AdopterID = fromNullString(adopterID)
	p.Adopted = adopted != 0
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
