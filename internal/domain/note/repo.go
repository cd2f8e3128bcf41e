package note

import (
	"context"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, n *DoctorNote) error
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*DoctorNote, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*DoctorNote, error)
}
