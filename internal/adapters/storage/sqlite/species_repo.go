package sqlite

import (
	"context"
	"database/sql"

	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
	"github.com/igorjosafa/PetAdota/internal/domain/species"
)

type SpeciesRepo struct {
	db *sql.DB
}

func NewSpeciesRepo(db *sql.DB) *SpeciesRepo {
	return &SpeciesRepo{db: db}
}

func (r *SpeciesRepo) CreateWithSRD(ctx context.Context, sp species.Species, srd breeds.Breed) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO species (id, name) VALUES (?, ?)
	`, sp.ID, sp.Name); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO breeds (id, name, species_id) VALUES (?, ?, ?)
	`, srd.ID, srd.Name, srd.SpeciesID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SpeciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM species WHERE id = ?
	`, id)

	var sp species.Species
	if err := row.Scan(&sp.ID, &sp.Name); err != nil {
		if err == sql.ErrNoRows {
			return species.Species{}, ErrNotFound
		}
		return species.Species{}, err
	}
	return sp, nil
}

func (r *SpeciesRepo) List(ctx context.Context) ([]species.Species, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name FROM species ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]species.Species, 0)
	for rows.Next() {
		var sp species.Species
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *SpeciesRepo) Update(ctx context.Context, sp species.Species) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE species SET name = ? WHERE id = ?
	`, sp.Name, sp.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SpeciesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM species WHERE id = ?
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

func (r *SpeciesRepo) Exists(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM species WHERE id = ?)
	`, id)

	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
