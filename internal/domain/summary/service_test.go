package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/domain/record"
)

type mockCompleter struct {
	out        string
	err        error
	lastSystem string
	lastUser   string
}

func (m *mockCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.out, m.err
}

type mockPatients struct {
	patients map[uuid.UUID]*patient.Patient
}

func (m *mockPatients) GetPatient(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	return m.patients[id], nil
}

func (m *mockPatients) GetPatientByCode(_ context.Context, code string) (*patient.Patient, error) {
	for _, p := range m.patients {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

type mockRecords struct {
	history map[uuid.UUID][]*record.RecordWithRefs
}

func (m *mockRecords) PatientHistory(_ context.Context, patientID uuid.UUID) ([]*record.RecordWithRefs, error) {
	return m.history[patientID], nil
}

func fixture() (*Service, *mockCompleter, *patient.Patient, *mockRecords) {
	p := &patient.Patient{ID: uuid.New(), Code: "PT0001", Name: "Anita Kumari", Age: 34, Gender: "female"}
	ai := &mockCompleter{out: "Summary text"}
	patients := &mockPatients{patients: map[uuid.UUID]*patient.Patient{p.ID: p}}
	records := &mockRecords{history: make(map[uuid.UUID][]*record.RecordWithRefs)}
	return NewService(ai, patients, records), ai, p, records
}

func withHistory(records *mockRecords, p *patient.Patient) {
	desc := "High fever for three days"
	treatment := "Paracetamol, fluids"
	records.history[p.ID] = []*record.RecordWithRefs{{
		HealthRecord: record.HealthRecord{
			PatientID:   p.ID,
			DateTime:    time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
			Disease:     "Dengue",
			Description: &desc,
			Treatment:   &treatment,
			RiskLevel:   "high",
		},
		Hospital: &record.HospitalRef{ID: uuid.New(), Name: "District Hospital"},
		Doctor:   &record.DoctorRef{ID: uuid.New(), Name: "Dr. Sharma", Specialization: "General Medicine"},
	}}
}

func TestSummarize(t *testing.T) {
	svc, ai, p, records := fixture()
	withHistory(records, p)

	got, err := svc.Summarize(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Summary text" {
		t.Errorf("unexpected summary: %q", got)
	}
	if !strings.Contains(ai.lastUser, "Anita Kumari") || !strings.Contains(ai.lastUser, "Dengue") {
		t.Errorf("expected prompt to carry patient and history, got %q", ai.lastUser)
	}
	if !strings.Contains(ai.lastSystem, "medical AI assistant") {
		t.Errorf("unexpected system prompt: %q", ai.lastSystem)
	}
}

func TestSummarize_ByCode(t *testing.T) {
	svc, _, p, records := fixture()
	withHistory(records, p)

	if _, err := svc.Summarize(context.Background(), "PT0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSummarize_PatientNotFound(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Summarize(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestSummarize_NoRecords(t *testing.T) {
	svc, ai, p, _ := fixture()

	got, err := svc.Summarize(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "No medical records available for this patient." {
		t.Errorf("unexpected summary: %q", got)
	}
	if ai.lastUser != "" {
		t.Error("expected no completion call when there is no history")
	}
}

func TestSummarize_EmptyCompletion(t *testing.T) {
	svc, ai, p, records := fixture()
	withHistory(records, p)
	ai.out = "  "

	got, err := svc.Summarize(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Unable to generate summary" {
		t.Errorf("expected fallback summary, got %q", got)
	}
}

func TestFormatHistory(t *testing.T) {
	p := &patient.Patient{ID: uuid.New()}
	records := &mockRecords{history: make(map[uuid.UUID][]*record.RecordWithRefs)}
	withHistory(records, p)

	warn := "Allergic to penicillin"
	records.history[p.ID] = append(records.history[p.ID], &record.RecordWithRefs{
		HealthRecord: record.HealthRecord{
			PatientID: p.ID,
			DateTime:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			Disease:   "Pneumonia",
			RiskLevel: "critical",
			Warnings:  &warn,
		},
	})

	out := FormatHistory(records.history[p.ID])

	if !strings.Contains(out, "Hospital: District Hospital") {
		t.Error("expected joined hospital name")
	}
	if !strings.Contains(out, "Doctor: Dr. Sharma (General Medicine)") {
		t.Error("expected doctor with specialization")
	}
	if !strings.Contains(out, "Hospital: Unknown") || !strings.Contains(out, "Doctor: Unknown") {
		t.Error("expected Unknown for missing references")
	}
	if !strings.Contains(out, "Treatment: N/A") {
		t.Error("expected N/A for missing treatment")
	}
	if !strings.Contains(out, "Warnings: Allergic to penicillin") {
		t.Error("expected warnings line when present")
	}
	if strings.Count(out, "---") != 2 {
		t.Errorf("expected one separator per record, got %d", strings.Count(out, "---"))
	}
}
