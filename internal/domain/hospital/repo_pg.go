package hospital

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hospitalRepoPG struct{ pool *pgxpool.Pool }

func NewHospitalRepoPG(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepoPG{pool: pool}
}

const hospitalCols = `id, hospital_code, name, location, contact_number, email, created_at, updated_at`

func scanHospital(row pgx.Row) (*Hospital, error) {
	var h Hospital
	err := row.Scan(&h.ID, &h.Code, &h.Name, &h.Location, &h.ContactNumber, &h.Email,
		&h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *hospitalRepoPG) Create(ctx context.Context, h *Hospital) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO hospitals (id, hospital_code, name, location, contact_number, email)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		h.ID, h.Code, h.Name, h.Location, h.ContactNumber, h.Email)
	return err
}

func (r *hospitalRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	h, err := scanHospital(r.pool.QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *hospitalRepoPG) GetByCode(ctx context.Context, code string) (*Hospital, error) {
	h, err := scanHospital(r.pool.QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE hospital_code = $1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *hospitalRepoPG) List(ctx context.Context) ([]*Hospital, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+hospitalCols+` FROM hospitals ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
