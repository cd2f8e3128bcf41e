package hospital

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	hospitals map[uuid.UUID]*Hospital
}

func newMockRepo() *mockRepo {
	return &mockRepo{hospitals: make(map[uuid.UUID]*Hospital)}
}

func (m *mockRepo) Create(_ context.Context, h *Hospital) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Hospital, error) {
	return m.hospitals[id], nil
}

func (m *mockRepo) GetByCode(_ context.Context, code string) (*Hospital, error) {
	for _, h := range m.hospitals {
		if h.Code == code {
			return h, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Hospital, error) {
	var items []*Hospital
	for _, h := range m.hospitals {
		items = append(items, h)
	}
	return items, nil
}

func TestResolveID_ByUUID(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	h := &Hospital{Code: "HOSP001", Name: "District Hospital"}
	repo.Create(context.Background(), h)

	got, err := svc.ResolveID(context.Background(), h.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != h.ID {
		t.Errorf("expected %s, got %s", h.ID, got)
	}
}

func TestResolveID_ByCode(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	h := &Hospital{Code: "HOSP001", Name: "District Hospital"}
	repo.Create(context.Background(), h)

	got, err := svc.ResolveID(context.Background(), "HOSP001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != h.ID {
		t.Errorf("expected %s, got %s", h.ID, got)
	}
}

func TestResolveID_Unknown(t *testing.T) {
	svc := NewService(newMockRepo())

	got, err := svc.ResolveID(context.Background(), "HOSP999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != uuid.Nil {
		t.Errorf("expected uuid.Nil for unknown code, got %s", got)
	}
}

func TestGetHospitalByCode_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	h, err := svc.GetHospitalByCode(context.Background(), "HOSP404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != nil {
		t.Error("expected nil for unknown hospital")
	}
}
