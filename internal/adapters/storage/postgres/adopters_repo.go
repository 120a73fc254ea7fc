package postgres

import (
	"context"
	"database/sql"

	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
)

type AdoptersRepo struct {
	db *sql.DB
}

func NewAdoptersRepo(db *sql.DB) *AdoptersRepo {
	return &AdoptersRepo{db: db}
}

func (r *AdoptersRepo) Create(ctx context.Context, a adopters.Adopter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adopters (id, name, phone, email, taxpayer_id)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.Name, a.Phone, a.Email, a.TaxpayerID)
	return err
}

func (r *AdoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, taxpayer_id FROM adopters WHERE id = $1
	`, id)

	var a adopters.Adopter
	if err := row.Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.TaxpayerID); err != nil {
		if err == sql.ErrNoRows {
			return adopters.Adopter{}, ErrNotFound
		}
		return adopters.Adopter{}, err
	}
	return a, nil
}

func (r *AdoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, email, taxpayer_id FROM adopters ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adopters.Adopter, 0)
	for rows.Next() {
		var a adopters.Adopter
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.TaxpayerID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptersRepo) Update(ctx context.Context, a adopters.Adopter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adopters
		SET name = $2, phone = $3, email = $4, taxpayer_id = $5
		WHERE id = $1
	`, a.ID, a.Name, a.Phone, a.Email, a.TaxpayerID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AdoptersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM adopters WHERE id = $1
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

func (r *AdoptersRepo) Exists(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM adopters WHERE id = $1)
	`, id)

	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
