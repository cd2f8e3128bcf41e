package record

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord is one time-stamped clinical entry in a patient's history.
// HospitalID and DoctorID are nullable so a record survives deletion of the
// facility or clinician that created it.
type HealthRecord struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	HospitalID    *uuid.UUID `db:"hospital_id" json:"hospital_id,omitempty"`
	DoctorID      *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	DateTime      time.Time  `db:"date_time" json:"date_time"`
	Disease       string     `db:"disease" json:"disease"`
	Description   *string    `db:"description" json:"description,omitempty"`
	Treatment     *string    `db:"treatment" json:"treatment,omitempty"`
	Prescription  *string    `db:"prescription" json:"prescription,omitempty"`
	RiskLevel     string     `db:"risk_level" json:"risk_level"`
	Warnings      *string    `db:"warnings" json:"warnings,omitempty"`
	MediaFiles    []string   `db:"media_files" json:"media_files,omitempty"`
	IsEditable    bool       `db:"is_editable" json:"is_editable"`
	EditableUntil *time.Time `db:"editable_until" json:"editable_until,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// HospitalRef and DoctorRef carry the display fields joined onto a record.
// They stay local to this package to keep the join read self-contained.
type HospitalRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type DoctorRef struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
}

// RecordWithRefs is the read model for patient history views. Hospital and
// Doctor are nil when the referenced row no longer exists.
type RecordWithRefs struct {
	HealthRecord
	Hospital *HospitalRef `json:"hospital,omitempty"`
	Doctor   *DoctorRef   `json:"doctor,omitempty"`
}

// RecordUpdate holds the mutable fields of a record. Nil fields are left
// untouched.
type RecordUpdate struct {
	Disease      *string  `json:"disease,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Treatment    *string  `json:"treatment,omitempty"`
	Prescription *string  `json:"prescription,omitempty"`
	RiskLevel    *string  `json:"risk_level,omitempty"`
	Warnings     *string  `json:"warnings,omitempty"`
	MediaFiles   []string `json:"media_files,omitempty"`
}
