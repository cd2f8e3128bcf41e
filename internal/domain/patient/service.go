package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validSearchTypes = map[string]bool{
	"id":    true,
	"name":  true,
	"phone": true,
}

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPatientByCode(ctx context.Context, code string) (*Patient, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) GetPatientByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Search matches patients by id, name or phone. An empty query returns an
// empty result set rather than everything; an unknown search type falls back
// to name.
func (s *Service) Search(ctx context.Context, query, searchType string) ([]*Patient, error) {
	if query == "" {
		return []*Patient{}, nil
	}
	if !validSearchTypes[searchType] {
		searchType = "name"
	}
	return s.repo.Search(ctx, query, searchType, SearchLimit)
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, upd *PatientUpdate) (*Patient, error) {
	if upd.Age != nil && (*upd.Age < 0 || *upd.Age > 150) {
		return nil, fmt.Errorf("age out of range")
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// FirstPatient backs the face-recognition placeholder: it returns the first
// patient in name order regardless of input, or nil when the registry is
// empty.
func (s *Service) FirstPatient(ctx context.Context) (*Patient, error) {
	return s.repo.First(ctx)
}
