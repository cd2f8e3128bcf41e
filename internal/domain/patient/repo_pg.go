package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, patient_code, name, age, gender, blood_group, phone, email,
	address, emergency_contact, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Age, &p.Gender, &p.BloodGroup,
		&p.Phone, &p.Email, &p.Address, &p.EmergencyContact, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients
			(id, patient_code, name, age, gender, blood_group, phone, email, address, emergency_contact)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.Code, p.Name, p.Age, p.Gender, p.BloodGroup, p.Phone, p.Email, p.Address, p.EmergencyContact)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) GetByCode(ctx context.Context, code string) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE patient_code = $1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		SELECT p.id, p.patient_code, p.name, p.age, p.gender, p.blood_group, p.phone, p.email,
		       p.address, p.emergency_contact, p.created_at, p.updated_at
		FROM patients p
		JOIN users u ON u.role_id = p.patient_code
		WHERE u.id = $1 AND u.role = 'patient'`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) Search(ctx context.Context, query, searchType string, limit int) ([]*Patient, error) {
	// Case-sensitive substring match, same semantics for all three fields.
	var where string
	switch searchType {
	case "id":
		where = `patient_code LIKE '%' || $1 || '%'`
	case "phone":
		where = `phone LIKE '%' || $1 || '%'`
	default:
		where = `name LIKE '%' || $1 || '%'`
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE `+where+` ORDER BY name ASC LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) Update(ctx context.Context, id uuid.UUID, upd *PatientUpdate) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		UPDATE patients SET
			name              = COALESCE($2, name),
			age               = COALESCE($3, age),
			gender            = COALESCE($4, gender),
			blood_group       = COALESCE($5, blood_group),
			phone             = COALESCE($6, phone),
			email             = COALESCE($7, email),
			address           = COALESCE($8, address),
			emergency_contact = COALESCE($9, emergency_contact),
			updated_at        = NOW()
		WHERE id = $1
		RETURNING `+patientCols,
		id, upd.Name, upd.Age, upd.Gender, upd.BloodGroup, upd.Phone, upd.Email, upd.Address, upd.EmergencyContact))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *patientRepoPG) First(ctx context.Context) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY name ASC LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
