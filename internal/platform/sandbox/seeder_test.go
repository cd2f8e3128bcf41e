package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/doctor"
	"github.com/arogya/arogya/internal/domain/hospital"
	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/domain/record"
	"github.com/arogya/arogya/internal/domain/user"
)

type memStore struct {
	hospitals []*hospital.Hospital
	doctors   []*doctor.Doctor
	patients  []*patient.Patient
	records   []*record.HealthRecord
	users     []*user.User
}

type memHospitals struct{ s *memStore }

func (m memHospitals) Create(_ context.Context, h *hospital.Hospital) error {
	h.ID = uuid.New()
	m.s.hospitals = append(m.s.hospitals, h)
	return nil
}
func (m memHospitals) GetByID(context.Context, uuid.UUID) (*hospital.Hospital, error) {
	return nil, nil
}
func (m memHospitals) GetByCode(context.Context, string) (*hospital.Hospital, error) {
	return nil, nil
}
func (m memHospitals) List(context.Context) ([]*hospital.Hospital, error) { return nil, nil }

type memDoctors struct{ s *memStore }

func (m memDoctors) Create(_ context.Context, d *doctor.Doctor) error {
	d.ID = uuid.New()
	m.s.doctors = append(m.s.doctors, d)
	return nil
}
func (m memDoctors) GetByID(context.Context, uuid.UUID) (*doctor.Doctor, error) { return nil, nil }
func (m memDoctors) GetByCode(context.Context, string) (*doctor.Doctor, error)  { return nil, nil }
func (m memDoctors) ListByHospital(context.Context, uuid.UUID) ([]*doctor.Doctor, error) {
	return nil, nil
}
func (m memDoctors) CountPatients(context.Context) (int, error)           { return 0, nil }
func (m memDoctors) CountRecentRecords(context.Context, int) (int, error) { return 0, nil }

type memPatients struct{ s *memStore }

func (m memPatients) Create(_ context.Context, p *patient.Patient) error {
	p.ID = uuid.New()
	m.s.patients = append(m.s.patients, p)
	return nil
}
func (m memPatients) GetByID(context.Context, uuid.UUID) (*patient.Patient, error) { return nil, nil }
func (m memPatients) GetByCode(context.Context, string) (*patient.Patient, error)  { return nil, nil }
func (m memPatients) GetByUserID(context.Context, uuid.UUID) (*patient.Patient, error) {
	return nil, nil
}
func (m memPatients) Search(context.Context, string, string, int) ([]*patient.Patient, error) {
	return nil, nil
}
func (m memPatients) Update(context.Context, uuid.UUID, *patient.PatientUpdate) (*patient.Patient, error) {
	return nil, nil
}
func (m memPatients) List(context.Context, int, int) ([]*patient.Patient, int, error) {
	return nil, 0, nil
}
func (m memPatients) First(context.Context) (*patient.Patient, error) { return nil, nil }

type memRecords struct{ s *memStore }

func (m memRecords) Create(_ context.Context, r *record.HealthRecord) error {
	r.ID = uuid.New()
	m.s.records = append(m.s.records, r)
	return nil
}
func (m memRecords) GetByID(context.Context, uuid.UUID) (*record.HealthRecord, error) {
	return nil, nil
}
func (m memRecords) Update(context.Context, uuid.UUID, *record.RecordUpdate) (*record.HealthRecord, error) {
	return nil, nil
}
func (m memRecords) ListWithRefsByPatient(context.Context, uuid.UUID) ([]*record.RecordWithRefs, error) {
	return nil, nil
}
func (m memRecords) ListRecentByHospital(context.Context, uuid.UUID, int) ([]*record.HealthRecord, error) {
	return nil, nil
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(_ context.Context, u *user.User) error {
	u.ID = uuid.New()
	m.s.users = append(m.s.users, u)
	return nil
}
func (m memUsers) GetByID(context.Context, uuid.UUID) (*user.User, error) { return nil, nil }
func (m memUsers) GetByRoleID(context.Context, string, string) (*user.User, error) {
	return nil, nil
}

func newMemSeeder() (*Seeder, *memStore) {
	s := &memStore{}
	return NewSeeder(memHospitals{s}, memDoctors{s}, memPatients{s}, memRecords{s}, memUsers{s}), s
}

func smallConfig() SeedConfig {
	cfg := DefaultSeedConfig()
	cfg.PatientCount = 10
	return cfg
}

func TestSeed_Counts(t *testing.T) {
	seeder, store := newMemSeeder()
	cfg := smallConfig()

	result, err := seeder.Seed(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Hospitals != cfg.HospitalCount {
		t.Errorf("expected %d hospitals, got %d", cfg.HospitalCount, result.Hospitals)
	}
	if result.Doctors != cfg.HospitalCount*cfg.DoctorsPerHospital {
		t.Errorf("expected %d doctors, got %d", cfg.HospitalCount*cfg.DoctorsPerHospital, result.Doctors)
	}
	if result.Patients != cfg.PatientCount {
		t.Errorf("expected %d patients, got %d", cfg.PatientCount, result.Patients)
	}
	if result.Records < cfg.PatientCount || result.Records > cfg.PatientCount*cfg.MaxRecordsPerPatient {
		t.Errorf("record count %d outside [%d, %d]", result.Records, cfg.PatientCount, cfg.PatientCount*cfg.MaxRecordsPerPatient)
	}
	if result.Users != 3 {
		t.Errorf("expected 3 demo users, got %d", result.Users)
	}
	if len(store.records) != result.Records {
		t.Errorf("store holds %d records, result says %d", len(store.records), result.Records)
	}
}

func TestSeed_Deterministic(t *testing.T) {
	seederA, storeA := newMemSeeder()
	seederB, storeB := newMemSeeder()
	cfg := smallConfig()

	if _, err := seederA.Seed(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := seederB.Seed(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(storeA.patients) != len(storeB.patients) {
		t.Fatalf("runs produced different patient counts: %d vs %d", len(storeA.patients), len(storeB.patients))
	}
	for i := range storeA.patients {
		if storeA.patients[i].Name != storeB.patients[i].Name {
			t.Fatalf("patient %d differs between runs: %q vs %q",
				i, storeA.patients[i].Name, storeB.patients[i].Name)
		}
	}
}

func TestSeed_ValidRiskLevels(t *testing.T) {
	seeder, store := newMemSeeder()

	if _, err := seeder.Seed(context.Background(), smallConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid := map[string]bool{"low": true, "medium": true, "high": true, "critical": true}
	for _, r := range store.records {
		if !valid[r.RiskLevel] {
			t.Errorf("record carries invalid risk level %q", r.RiskLevel)
		}
		if r.HospitalID == nil || r.DoctorID == nil {
			t.Error("seeded record missing hospital or doctor reference")
		}
	}
}

func TestEditability_SameDayWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	editable, until := editability(0, now)
	if !editable {
		t.Error("expected a same-day record to be editable")
	}
	if until == nil || !until.Equal(now.Add(time.Hour)) {
		t.Errorf("expected edit deadline %v, got %v", now.Add(time.Hour), until)
	}

	editable, until = editability(3, now)
	if editable || until != nil {
		t.Errorf("expected an older record to be frozen, got editable=%v until=%v", editable, until)
	}
}

func TestSeed_RecordEditability(t *testing.T) {
	seeder, store := newMemSeeder()

	if _, err := seeder.Seed(context.Background(), smallConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cutoff := time.Now().AddDate(0, 0, -1)
	for _, r := range store.records {
		if r.IsEditable != (r.EditableUntil != nil) {
			t.Errorf("record editability and deadline disagree: editable=%v until=%v", r.IsEditable, r.EditableUntil)
		}
		if r.IsEditable && r.DateTime.Before(cutoff) {
			t.Errorf("record dated %v should not be editable", r.DateTime)
		}
		if r.Prescription == nil || *r.Prescription == "" {
			t.Error("seeded record missing prescription")
		}
	}
}

func TestSeed_DemoUsers(t *testing.T) {
	seeder, store := newMemSeeder()

	if _, err := seeder.Seed(context.Background(), smallConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roles := map[string]string{}
	for _, u := range store.users {
		roles[u.Role] = u.RoleID
		if u.Password == "password123" {
			t.Error("demo password must be stored hashed")
		}
		switch u.Role {
		case user.RoleDoctor, user.RoleHospital:
			if u.Email == nil {
				t.Errorf("expected contact email on demo %s account", u.Role)
			}
		case user.RolePatient:
			if u.Phone == nil {
				t.Error("expected contact phone on demo patient account")
			}
		}
	}
	if roles[user.RoleDoctor] != "DOC001" || roles[user.RolePatient] != "PT0001" || roles[user.RoleHospital] != "HOSP001" {
		t.Errorf("unexpected demo accounts: %v", roles)
	}
}
