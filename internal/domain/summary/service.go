package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/domain/record"
)

// ErrPatientNotFound means the summarize target does not exist.
var ErrPatientNotFound = errors.New("patient not found")

const systemPrompt = "You are a medical AI assistant. Summarize patient medical histories " +
	"concisely and clinically. Structure the summary under Chief Complaints, Diagnoses, " +
	"Treatments, and Recommendations."

const fallbackSummary = "Unable to generate summary"

// Completer is the slice of the AI client this service needs.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// PatientSource resolves the summarize target by UUID or business code.
type PatientSource interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	GetPatientByCode(ctx context.Context, code string) (*patient.Patient, error)
}

// RecordSource supplies the history to summarize.
type RecordSource interface {
	PatientHistory(ctx context.Context, patientID uuid.UUID) ([]*record.RecordWithRefs, error)
}

type Service struct {
	ai       Completer
	patients PatientSource
	records  RecordSource
}

func NewService(ai Completer, patients PatientSource, records RecordSource) *Service {
	return &Service{ai: ai, patients: patients, records: records}
}

// Summarize builds a plain-text rendering of the patient's history and asks
// the model for a clinical summary. The raw upstream error is logged by the
// caller; clients only ever see a generic failure.
func (s *Service) Summarize(ctx context.Context, patientIDOrCode string) (string, error) {
	p, err := s.resolvePatient(ctx, patientIDOrCode)
	if err != nil {
		return "", err
	}

	history, err := s.records.PatientHistory(ctx, p.ID)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}
	if len(history) == 0 {
		return "No medical records available for this patient.", nil
	}

	userPrompt := fmt.Sprintf("Patient: %s (age %d, %s)\n\nMedical history:\n\n%s",
		p.Name, p.Age, p.Gender, FormatHistory(history))

	out, err := s.ai.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return fallbackSummary, nil
	}
	return out, nil
}

func (s *Service) resolvePatient(ctx context.Context, idOrCode string) (*patient.Patient, error) {
	var p *patient.Patient
	var err error
	if id, parseErr := uuid.Parse(idOrCode); parseErr == nil {
		p, err = s.patients.GetPatient(ctx, id)
	} else {
		p, err = s.patients.GetPatientByCode(ctx, idOrCode)
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

// FormatHistory renders records newest first as one text block per record,
// separated by a "---" line. Deleted hospitals and doctors show as Unknown.
func FormatHistory(history []*record.RecordWithRefs) string {
	blocks := make([]string, 0, len(history))
	for _, r := range history {
		var b strings.Builder
		fmt.Fprintf(&b, "Date: %s\n", r.DateTime.Format("2006-01-02"))
		fmt.Fprintf(&b, "Hospital: %s\n", refName(r.Hospital))
		fmt.Fprintf(&b, "Doctor: %s\n", doctorName(r.Doctor))
		fmt.Fprintf(&b, "Disease: %s\n", r.Disease)
		fmt.Fprintf(&b, "Description: %s\n", orNA(r.Description))
		fmt.Fprintf(&b, "Treatment: %s\n", orNA(r.Treatment))
		fmt.Fprintf(&b, "Risk Level: %s", r.RiskLevel)
		if r.Warnings != nil && *r.Warnings != "" {
			fmt.Fprintf(&b, "\nWarnings: %s", *r.Warnings)
		}
		b.WriteString("\n---")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func refName(h *record.HospitalRef) string {
	if h == nil {
		return "Unknown"
	}
	return h.Name
}

func doctorName(d *record.DoctorRef) string {
	if d == nil {
		return "Unknown"
	}
	if d.Specialization != "" {
		return d.Name + " (" + d.Specialization + ")"
	}
	return d.Name
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
