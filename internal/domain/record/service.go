package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// editWindow is how long a newly created record stays flagged editable.
const editWindow = time.Hour

var validRiskLevels = map[string]bool{
	"low":      true,
	"medium":   true,
	"high":     true,
	"critical": true,
}

type Service struct {
	repo RecordRepository
	now  func() time.Time
}

func NewService(repo RecordRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateRecord stores a new health record. The editability flag and deadline
// are always set server-side; client-supplied values are ignored.
func (s *Service) CreateRecord(ctx context.Context, r *HealthRecord) error {
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if r.Disease == "" {
		return fmt.Errorf("disease is required")
	}
	if r.RiskLevel == "" {
		r.RiskLevel = "low"
	}
	if !validRiskLevels[r.RiskLevel] {
		return fmt.Errorf("invalid risk_level %q", r.RiskLevel)
	}
	if r.DateTime.IsZero() {
		r.DateTime = s.now()
	}

	until := s.now().Add(editWindow)
	r.IsEditable = true
	r.EditableUntil = &until

	return s.repo.Create(ctx, r)
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*HealthRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateRecord applies a partial update. The editable_until deadline is
// informational only and is not enforced here.
func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, upd *RecordUpdate) (*HealthRecord, error) {
	if upd.RiskLevel != nil && !validRiskLevels[*upd.RiskLevel] {
		return nil, fmt.Errorf("invalid risk_level %q", *upd.RiskLevel)
	}
	return s.repo.Update(ctx, id, upd)
}

// PatientHistory returns the patient's records newest first, with hospital
// and doctor display fields joined in.
func (s *Service) PatientHistory(ctx context.Context, patientID uuid.UUID) ([]*RecordWithRefs, error) {
	return s.repo.ListWithRefsByPatient(ctx, patientID)
}

func (s *Service) RecentByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*HealthRecord, error) {
	return s.repo.ListRecentByHospital(ctx, hospitalID, 10)
}
