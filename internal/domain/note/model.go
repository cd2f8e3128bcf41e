package note

import (
	"time"

	"github.com/google/uuid"
)

// DoctorNote is free-form commentary a doctor attaches to a record or a
// patient. RecordID and PatientID are optional so a note can hang off
// either.
type DoctorNote struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	RecordID  *uuid.UUID `db:"record_id" json:"record_id,omitempty"`
	DoctorID  uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientID *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	Note      string     `db:"note" json:"note"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
