package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo NoteRepository
}

func NewService(repo NoteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateNote(ctx context.Context, n *DoctorNote) error {
	if n.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if n.Note == "" {
		return fmt.Errorf("note text is required")
	}
	if n.RecordID == nil && n.PatientID == nil {
		return fmt.Errorf("note must reference a record or a patient")
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) NotesForRecord(ctx context.Context, recordID uuid.UUID) ([]*DoctorNote, error) {
	return s.repo.ListByRecord(ctx, recordID)
}

func (s *Service) NotesForPatient(ctx context.Context, patientID uuid.UUID) ([]*DoctorNote, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
