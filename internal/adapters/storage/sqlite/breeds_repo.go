package sqlite

import (
	"context"
	"database/sql"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeds (id, name, species_id) VALUES (?, ?, ?)
	`, b.ID, b.Name, b.SpeciesID)
	return err
}

func (r *BreedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species_id FROM breeds WHERE id = ?
	`, id)

	var b breeds.Breed
	if err := row.Scan(&b.ID, &b.Name, &b.SpeciesID); err != nil {
		if err == sql.ErrNoRows {
			return breeds.Breed{}, ErrNotFound
		}
		return breeds.Breed{}, err
	}
	return b, nil
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	return r.queryBreeds(ctx, `
		SELECT id, name, species_id FROM breeds ORDER BY name ASC
	`)
}

func (r *BreedsRepo) ListBySpecies(ctx context.Context, speciesID string) ([]breeds.Breed, error) {
	return r.queryBreeds(ctx, `
		SELECT id, name, species_id FROM breeds WHERE species_id = ? ORDER BY name ASC
	`, speciesID)
}

func (r *BreedsRepo) CountBySpecies(ctx context.Context, speciesID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM breeds WHERE species_id = ?
	`, speciesID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeds SET name = ?, species_id = ? WHERE id = ?
	`, b.Name, b.SpeciesID, b.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BreedsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM breeds WHERE id = ?
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

func (r *BreedsRepo) queryBreeds(ctx context.Context, query string, args ...any) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.SpeciesID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
