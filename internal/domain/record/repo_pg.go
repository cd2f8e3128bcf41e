package record

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct{ pool *pgxpool.Pool }

func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository {
	return &recordRepoPG{pool: pool}
}

const recordCols = `id, patient_id, hospital_id, doctor_id, date_time, disease, description,
	treatment, prescription, risk_level, warnings, media_files, is_editable, editable_until, created_at, updated_at`

func scanRecord(row pgx.Row) (*HealthRecord, error) {
	var r HealthRecord
	err := row.Scan(&r.ID, &r.PatientID, &r.HospitalID, &r.DoctorID, &r.DateTime,
		&r.Disease, &r.Description, &r.Treatment, &r.Prescription, &r.RiskLevel, &r.Warnings,
		&r.MediaFiles, &r.IsEditable, &r.EditableUntil, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (repo *recordRepoPG) Create(ctx context.Context, r *HealthRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO health_records
			(id, patient_id, hospital_id, doctor_id, date_time, disease, description,
			 treatment, prescription, risk_level, warnings, media_files, is_editable, editable_until)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		r.ID, r.PatientID, r.HospitalID, r.DoctorID, r.DateTime, r.Disease, r.Description,
		r.Treatment, r.Prescription, r.RiskLevel, r.Warnings, r.MediaFiles, r.IsEditable, r.EditableUntil)
	return err
}

func (repo *recordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*HealthRecord, error) {
	r, err := scanRecord(repo.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM health_records WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (repo *recordRepoPG) Update(ctx context.Context, id uuid.UUID, upd *RecordUpdate) (*HealthRecord, error) {
	r, err := scanRecord(repo.pool.QueryRow(ctx, `
		UPDATE health_records SET
			disease      = COALESCE($2, disease),
			description  = COALESCE($3, description),
			treatment    = COALESCE($4, treatment),
			prescription = COALESCE($5, prescription),
			risk_level   = COALESCE($6, risk_level),
			warnings     = COALESCE($7, warnings),
			media_files  = COALESCE($8, media_files),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING `+recordCols,
		id, upd.Disease, upd.Description, upd.Treatment, upd.Prescription, upd.RiskLevel, upd.Warnings, upd.MediaFiles))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (repo *recordRepoPG) ListWithRefsByPatient(ctx context.Context, patientID uuid.UUID) ([]*RecordWithRefs, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT r.id, r.patient_id, r.hospital_id, r.doctor_id, r.date_time, r.disease,
		       r.description, r.treatment, r.prescription, r.risk_level, r.warnings,
		       r.media_files, r.is_editable, r.editable_until, r.created_at, r.updated_at,
		       h.id, h.name, d.id, d.name, d.specialization
		FROM health_records r
		LEFT JOIN hospitals h ON h.id = r.hospital_id
		LEFT JOIN doctors d ON d.id = r.doctor_id
		WHERE r.patient_id = $1
		ORDER BY r.date_time DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*RecordWithRefs
	for rows.Next() {
		var rr RecordWithRefs
		var hID, dID *uuid.UUID
		var hName, dName, dSpec *string
		err := rows.Scan(&rr.ID, &rr.PatientID, &rr.HospitalID, &rr.DoctorID, &rr.DateTime,
			&rr.Disease, &rr.Description, &rr.Treatment, &rr.Prescription, &rr.RiskLevel,
			&rr.Warnings, &rr.MediaFiles, &rr.IsEditable, &rr.EditableUntil, &rr.CreatedAt, &rr.UpdatedAt,
			&hID, &hName, &dID, &dName, &dSpec)
		if err != nil {
			return nil, err
		}
		if hID != nil {
			rr.Hospital = &HospitalRef{ID: *hID, Name: *hName}
		}
		if dID != nil {
			rr.Doctor = &DoctorRef{ID: *dID, Name: *dName}
			if dSpec != nil {
				rr.Doctor.Specialization = *dSpec
			}
		}
		items = append(items, &rr)
	}
	return items, rows.Err()
}

func (repo *recordRepoPG) ListRecentByHospital(ctx context.Context, hospitalID uuid.UUID, limit int) ([]*HealthRecord, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT `+recordCols+`
		FROM health_records
		WHERE hospital_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, hospitalID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*HealthRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
