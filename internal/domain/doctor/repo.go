package doctor

import (
	"context"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	// GetByCode returns (nil, nil) when no doctor matches.
	GetByCode(ctx context.Context, code string) (*Doctor, error)
	// ListByHospital returns the hospital's doctors ordered by name.
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Doctor, error)
	// CountPatients and CountRecentRecords feed the stats dashboard.
	CountPatients(ctx context.Context) (int, error)
	CountRecentRecords(ctx context.Context, since int) (int, error)
}
