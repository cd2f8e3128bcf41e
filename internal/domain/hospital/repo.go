package hospital

import (
	"context"

	"github.com/google/uuid"
)

type HospitalRepository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
	// GetByCode resolves a hospital by its business code (e.g. HOSP001).
	// Returns (nil, nil) when no hospital matches.
	GetByCode(ctx context.Context, code string) (*Hospital, error)
	List(ctx context.Context) ([]*Hospital, error)
}
