package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/igorjosafa/PetAdota/internal/domain/adoptions"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Register grava pet e adoção na mesma transação; registro duplo para
// o mesmo pet estoura na UNIQUE de adoptions.pet_id.
func (r *AdoptionsRepo) Register(ctx context.Context, a adoptions.Adoption, p pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE pets SET adopted = ?, adopter_id = ? WHERE id = ?
	`, boolToInt(p.Adopted), toNullString(p.AdopterID), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoptions (id, adopter_id, pet_id, adoption_date)
		VALUES (?, ?, ?, ?)
	`, a.ID, a.AdopterID, a.PetID, a.Date.Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) Rescind(ctx context.Context, adoptionID string, p *pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if p != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE pets SET adopted = ?, adopter_id = ? WHERE id = ?
		`, boolToInt(p.Adopted), toNullString(p.AdopterID), p.ID); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM adoptions WHERE id = ?
	`, adoptionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, adopter_id, pet_id, adoption_date FROM adoptions WHERE id = ?
	`, id)
	return scanAdoption(row)
}

func (r *AdoptionsRepo) GetByPet(ctx context.Context, petID string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, adopter_id, pet_id, adoption_date FROM adoptions WHERE pet_id = ?
	`, petID)
	return scanAdoption(row)
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, adopter_id, pet_id, adoption_date
		FROM adoptions
		ORDER BY adoption_date ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) CountByAdopter(ctx context.Context, adopterID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM adoptions WHERE adopter_id = ?
	`, adopterID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAdoption(row rowScanner) (adoptions.Adoption, error) {
	var a adoptions.Adoption
	var date string
	if err := row.Scan(&a.ID, &a.AdopterID, &a.PetID, &date); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Adoption{}, ErrNotFound
		}
		return adoptions.Adoption{}, err
	}

	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	a.Date = t
	return a, nil
}
