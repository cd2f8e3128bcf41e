package note

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type noteRepoPG struct{ pool *pgxpool.Pool }

func NewNoteRepoPG(pool *pgxpool.Pool) NoteRepository {
	return &noteRepoPG{pool: pool}
}

const noteCols = `id, record_id, doctor_id, patient_id, note, created_at`

func scanNote(row pgx.Row) (*DoctorNote, error) {
	var n DoctorNote
	err := row.Scan(&n.ID, &n.RecordID, &n.DoctorID, &n.PatientID, &n.Note, &n.CreatedAt)
	return &n, err
}

func (r *noteRepoPG) Create(ctx context.Context, n *DoctorNote) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctor_notes (id, record_id, doctor_id, patient_id, note)
		VALUES ($1,$2,$3,$4,$5)`,
		n.ID, n.RecordID, n.DoctorID, n.PatientID, n.Note)
	return err
}

func (r *noteRepoPG) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*DoctorNote, error) {
	return r.list(ctx, `record_id = $1`, recordID)
}

func (r *noteRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*DoctorNote, error) {
	return r.list(ctx, `patient_id = $1`, patientID)
}

func (r *noteRepoPG) list(ctx context.Context, where string, arg any) ([]*DoctorNote, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+noteCols+` FROM doctor_notes WHERE `+where+` ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
