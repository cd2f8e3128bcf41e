package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/record"
)

// Patient is the demographic profile. Code is the human-facing identifier
// (PT0001) printed on hospital cards; the UUID is internal.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Code             string    `db:"patient_code" json:"patient_code"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	BloodGroup       *string   `db:"blood_group" json:"blood_group,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Address          *string   `db:"address" json:"address,omitempty"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// PatientWithRecords is the profile view: demographics plus the full
// clinical history, newest first.
type PatientWithRecords struct {
	Patient
	Records []*record.RecordWithRefs `json:"records"`
}

// PatientUpdate holds the profile fields a patient may edit. Nil fields are
// left untouched.
type PatientUpdate struct {
	Name             *string `json:"name,omitempty"`
	Age              *int    `json:"age,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	BloodGroup       *string `json:"blood_group,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}
