package postgres

import (
	"context"
	"database/sql"

	"github.com/igorjosafa/PetAdota/internal/domain/adoptions"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Register grava o pet espelhado e a adoção na mesma transação. Uma
// corrida entre dois registros para o mesmo pet estoura na UNIQUE de
// adoptions.pet_id e a transação inteira volta.
func (r *AdoptionsRepo) Register(ctx context.Context, a adoptions.Adoption, p pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE pets SET adopted = $2, adopter_id = $3 WHERE id = $1
	`, p.ID, p.Adopted, toNullString(p.AdopterID))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoptions (id, adopter_id, pet_id, adoption_date)
		VALUES ($1, $2, $3, $4)
	`, a.ID, a.AdopterID, a.PetID, a.Date); err != nil {
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
			UPDATE pets SET adopted = $2, adopter_id = $3 WHERE id = $1
		`, p.ID, p.Adopted, toNullString(p.AdopterID)); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM adoptions WHERE id = $1
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
		SELECT id, adopter_id, pet_id, adoption_date FROM adoptions WHERE id = $1
	`, id)

	var a adoptions.Adoption
	if err := row.Scan(&a.ID, &a.AdopterID, &a.PetID, &a.Date); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Adoption{}, ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) GetByPet(ctx context.Context, petID string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, adopter_id, pet_id, adoption_date FROM adoptions WHERE pet_id = $1
	`, petID)

	var a adoptions.Adoption
	if err := row.Scan(&a.ID, &a.AdopterID, &a.PetID, &a.Date); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Adoption{}, ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
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
		var a adoptions.Adoption
		if err := rows.Scan(&a.ID, &a.AdopterID, &a.PetID, &a.Date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) CountByAdopter(ctx context.Context, adopterID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM adoptions WHERE adopter_id = $1
	`, adopterID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
