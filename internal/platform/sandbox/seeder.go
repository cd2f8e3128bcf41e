// Package sandbox generates a reproducible demo corpus for development and
// demo environments: hospitals, their doctors, a patient registry with
// clinical histories, and login accounts for one user of each role.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/arogya/arogya/internal/domain/doctor"
	"github.com/arogya/arogya/internal/domain/hospital"
	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/domain/record"
	"github.com/arogya/arogya/internal/domain/user"
	"github.com/arogya/arogya/internal/platform/auth"
)

// SeedConfig controls the volume of generated demo data. The same Seed
// always produces the same corpus.
type SeedConfig struct {
	HospitalCount        int
	DoctorsPerHospital   int
	PatientCount         int
	MaxRecordsPerPatient int
	DemoPassword         string
	Seed                 int64
}

func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		HospitalCount:        2,
		DoctorsPerHospital:   5,
		PatientCount:         200,
		MaxRecordsPerPatient: 5,
		DemoPassword:         "password123",
		Seed:                 1,
	}
}

// SeedResult summarizes what a seed run inserted.
type SeedResult struct {
	Hospitals int `json:"hospitals"`
	Doctors   int `json:"doctors"`
	Patients  int `json:"patients"`
	Records   int `json:"records"`
	Users     int `json:"users"`
}

type Seeder struct {
	hospitals hospital.HospitalRepository
	doctors   doctor.DoctorRepository
	patients  patient.PatientRepository
	records   record.RecordRepository
	users     user.UserRepository
}

func NewSeeder(
	hospitals hospital.HospitalRepository,
	doctors doctor.DoctorRepository,
	patients patient.PatientRepository,
	records record.RecordRepository,
	users user.UserRepository,
) *Seeder {
	return &Seeder{
		hospitals: hospitals,
		doctors:   doctors,
		patients:  patients,
		records:   records,
		users:     users,
	}
}

var hospitalNames = []string{
	"District General Hospital Chikkamagaluru",
	"Malnad Community Health Centre",
	"Sahyadri Multispeciality Hospital",
	"Cauvery Medical Centre",
}

var hospitalLocations = []string{
	"Chikkamagaluru",
	"Mudigere",
	"Kadur",
	"Tarikere",
}

var specializations = []string{
	"General Medicine",
	"Pediatrics",
	"Cardiology",
	"Orthopedics",
	"Dermatology",
	"Gynecology",
	"ENT",
}

var firstNames = []string{
	"Anita", "Ravi", "Suresh", "Lakshmi", "Manjunath", "Deepa", "Kiran",
	"Savitha", "Prakash", "Geetha", "Harish", "Rekha", "Mohan", "Asha",
	"Vijay", "Shobha", "Nagesh", "Pooja", "Ramesh", "Kavya",
}

var lastNames = []string{
	"Kumar", "Gowda", "Shetty", "Hegde", "Rao", "Naik", "Bhat",
	"Kumari", "Shenoy", "Pai",
}

type diseaseProfile struct {
	disease   string
	desc      string
	treatment string
	risk      string
}

var diseaseTable = []diseaseProfile{
	{"Dengue fever", "High fever with platelet drop", "IV fluids, paracetamol, platelet monitoring", "high"},
	{"Malaria", "Intermittent fever with chills", "Artemisinin combination therapy", "medium"},
	{"Typhoid", "Sustained fever with abdominal pain", "Oral cefixime, hydration", "medium"},
	{"Viral fever", "Low grade fever and body ache", "Rest, paracetamol", "low"},
	{"Hypertension", "Elevated blood pressure on routine check", "Amlodipine 5mg daily, salt restriction", "medium"},
	{"Type 2 diabetes", "Elevated fasting glucose", "Metformin 500mg twice daily, diet control", "medium"},
	{"Asthma", "Wheezing and breathlessness on exertion", "Salbutamol inhaler as needed", "medium"},
	{"Pneumonia", "Productive cough with chest pain", "Oral amoxicillin, chest physiotherapy", "high"},
	{"Gastroenteritis", "Loose stools and vomiting", "ORS, zinc supplementation", "low"},
	{"Migraine", "Recurrent unilateral headache", "Sumatriptan at onset, trigger avoidance", "low"},
	{"Anemia", "Fatigue with low hemoglobin", "Oral iron, dietary advice", "low"},
	{"Fracture of forearm", "Fall on outstretched hand", "Closed reduction and cast for six weeks", "medium"},
	{"Chickenpox", "Vesicular rash with fever", "Calamine, antihistamines, isolation", "low"},
	{"Acute appendicitis", "Right lower quadrant pain", "Laparoscopic appendectomy", "critical"},
	{"COPD exacerbation", "Worsening breathlessness in chronic smoker", "Nebulized bronchodilators, steroids", "critical"},
}

// Seed populates the database. It assumes empty tables; rerunning against a
// seeded database fails on the unique business codes.
func (s *Seeder) Seed(ctx context.Context, cfg SeedConfig) (*SeedResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	result := &SeedResult{}

	hospitals, err := s.seedHospitals(ctx, cfg, result)
	if err != nil {
		return nil, err
	}
	doctors, err := s.seedDoctors(ctx, cfg, rng, hospitals, result)
	if err != nil {
		return nil, err
	}
	patients, err := s.seedPatients(ctx, cfg, rng, result)
	if err != nil {
		return nil, err
	}
	if err := s.seedRecords(ctx, cfg, rng, hospitals, doctors, patients, result); err != nil {
		return nil, err
	}
	if err := s.seedUsers(ctx, cfg, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Seeder) seedHospitals(ctx context.Context, cfg SeedConfig, result *SeedResult) ([]*hospital.Hospital, error) {
	hospitals := make([]*hospital.Hospital, 0, cfg.HospitalCount)
	for i := 0; i < cfg.HospitalCount; i++ {
		phone := fmt.Sprintf("08262-2%05d", 10000+i)
		h := &hospital.Hospital{
			Code:          fmt.Sprintf("HOSP%03d", i+1),
			Name:          hospitalNames[i%len(hospitalNames)],
			Location:      hospitalLocations[i%len(hospitalLocations)],
			ContactNumber: &phone,
		}
		if err := s.hospitals.Create(ctx, h); err != nil {
			return nil, fmt.Errorf("seed hospital %s: %w", h.Code, err)
		}
		hospitals = append(hospitals, h)
		result.Hospitals++
	}
	return hospitals, nil
}

func (s *Seeder) seedDoctors(ctx context.Context, cfg SeedConfig, rng *rand.Rand, hospitals []*hospital.Hospital, result *SeedResult) ([]*doctor.Doctor, error) {
	var doctors []*doctor.Doctor
	n := 0
	for _, h := range hospitals {
		for i := 0; i < cfg.DoctorsPerHospital; i++ {
			n++
			d := &doctor.Doctor{
				Code:           fmt.Sprintf("DOC%03d", n),
				Name:           "Dr. " + pick(rng, firstNames) + " " + pick(rng, lastNames),
				Specialization: specializations[(n-1)%len(specializations)],
				HospitalID:     h.ID,
			}
			if err := s.doctors.Create(ctx, d); err != nil {
				return nil, fmt.Errorf("seed doctor %s: %w", d.Code, err)
			}
			doctors = append(doctors, d)
			result.Doctors++
		}
	}
	return doctors, nil
}

func (s *Seeder) seedPatients(ctx context.Context, cfg SeedConfig, rng *rand.Rand, result *SeedResult) ([]*patient.Patient, error) {
	bloodGroups := []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}
	genders := []string{"male", "female"}

	patients := make([]*patient.Patient, 0, cfg.PatientCount)
	for i := 0; i < cfg.PatientCount; i++ {
		bg := pick(rng, bloodGroups)
		phone := fmt.Sprintf("9%09d", 100000000+rng.Intn(900000000))
		p := &patient.Patient{
			Code:       fmt.Sprintf("PT%04d", i+1),
			Name:       pick(rng, firstNames) + " " + pick(rng, lastNames),
			Age:        1 + rng.Intn(90),
			Gender:     pick(rng, genders),
			BloodGroup: &bg,
			Phone:      &phone,
		}
		if err := s.patients.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed patient %s: %w", p.Code, err)
		}
		patients = append(patients, p)
		result.Patients++
	}
	return patients, nil
}

const demoPrescription = "Medication prescribed as per treatment protocol"

// editability keeps same-day records open for correction for one hour, the
// same window new records get at creation. Older records are frozen.
func editability(daysAgo int, now time.Time) (bool, *time.Time) {
	if daysAgo != 0 {
		return false, nil
	}
	until := now.Add(time.Hour)
	return true, &until
}

func (s *Seeder) seedRecords(ctx context.Context, cfg SeedConfig, rng *rand.Rand, hospitals []*hospital.Hospital, doctors []*doctor.Doctor, patients []*patient.Patient, result *SeedResult) error {
	now := time.Now()
	for _, p := range patients {
		count := 1 + rng.Intn(cfg.MaxRecordsPerPatient)
		for i := 0; i < count; i++ {
			profile := diseaseTable[rng.Intn(len(diseaseTable))]
			h := hospitals[rng.Intn(len(hospitals))]
			d := doctors[rng.Intn(len(doctors))]
			desc := profile.desc
			treatment := profile.treatment
			rx := demoPrescription
			daysAgo := rng.Intn(365)
			editable, until := editability(daysAgo, now)

			r := &record.HealthRecord{
				PatientID:     p.ID,
				HospitalID:    &h.ID,
				DoctorID:      &d.ID,
				DateTime:      now.AddDate(0, 0, -daysAgo),
				Disease:       profile.disease,
				Description:   &desc,
				Treatment:     &treatment,
				Prescription:  &rx,
				RiskLevel:     profile.risk,
				IsEditable:    editable,
				EditableUntil: until,
			}
			if err := s.records.Create(ctx, r); err != nil {
				return fmt.Errorf("seed record for %s: %w", p.Code, err)
			}
			result.Records++
		}
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, cfg SeedConfig, result *SeedResult) error {
	hash, err := auth.HashPassword(cfg.DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	doctorEmail := "demo.doctor@hospital.com"
	patientPhone := "9000000001"
	adminEmail := "admin@hospital.com"
	demo := []struct {
		name   string
		role   string
		roleID string
		email  *string
		phone  *string
	}{
		{"Demo Doctor", user.RoleDoctor, "DOC001", &doctorEmail, nil},
		{"Demo Patient", user.RolePatient, "PT0001", nil, &patientPhone},
		{"Demo Hospital Admin", user.RoleHospital, "HOSP001", &adminEmail, nil},
	}
	for _, d := range demo {
		u := &user.User{Name: d.name, Role: d.role, RoleID: d.roleID, Password: hash, Email: d.email, Phone: d.phone}
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s/%s: %w", d.role, d.roleID, err)
		}
		result.Users++
	}
	return nil
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
