package patient

import (
	"context"

	"github.com/google/uuid"
)

// SearchLimit caps search results so a broad query cannot dump the whole
// registry.
const SearchLimit = 10

// PatientRepository persists patient profiles. Lookups return (nil, nil)
// when no row matches.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByCode(ctx context.Context, code string) (*Patient, error)
	// GetByUserID resolves the patient linked to a login account.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error)
	Search(ctx context.Context, query, searchType string, limit int) ([]*Patient, error)
	Update(ctx context.Context, id uuid.UUID, upd *PatientUpdate) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// First returns the first patient in name order, or (nil, nil) when the
	// registry is empty.
	First(ctx context.Context) (*Patient, error)
}
