package record

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository persists health records. Lookups return (nil, nil) when
// no row matches.
type RecordRepository interface {
	Create(ctx context.Context, r *HealthRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*HealthRecord, error)
	Update(ctx context.Context, id uuid.UUID, upd *RecordUpdate) (*HealthRecord, error)
	ListWithRefsByPatient(ctx context.Context, patientID uuid.UUID) ([]*RecordWithRefs, error)
	ListRecentByHospital(ctx context.Context, hospitalID uuid.UUID, limit int) ([]*HealthRecord, error)
}
