package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// recentWindowDays is the trailing window used for the recent-cases count.
const recentWindowDays = 30

type Service struct {
	repo DoctorRepository
}

func NewService(repo DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetDoctorByCode(ctx context.Context, code string) (*Doctor, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Doctor, error) {
	return s.repo.ListByHospital(ctx, hospitalID)
}

// GetStats aggregates dashboard counters. Pending reviews are not tracked
// yet, so that counter is always zero.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	patients, err := s.repo.CountPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	recent, err := s.repo.CountRecentRecords(ctx, recentWindowDays)
	if err != nil {
		return nil, fmt.Errorf("count recent records: %w", err)
	}
	return &Stats{
		TotalPatients:  patients,
		RecentCases:    recent,
		PendingReviews: 0,
	}, nil
}
