package hospital

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo HospitalRepository
}

func NewService(repo HospitalRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetHospitalByCode(ctx context.Context, code string) (*Hospital, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) ListHospitals(ctx context.Context) ([]*Hospital, error) {
	return s.repo.List(ctx)
}

// ResolveID accepts either a hospital UUID or a business code and returns the
// hospital's UUID. Hospital admins know their code (HOSP001), internal
// references use the UUID; both are accepted anywhere a hospital is
// identified. Returns uuid.Nil when nothing matches.
func (s *Service) ResolveID(ctx context.Context, idOrCode string) (uuid.UUID, error) {
	if id, err := uuid.Parse(idOrCode); err == nil {
		return id, nil
	}
	h, err := s.repo.GetByCode(ctx, idOrCode)
	if err != nil {
		return uuid.Nil, err
	}
	if h == nil {
		return uuid.Nil, nil
	}
	return h.ID, nil
}
