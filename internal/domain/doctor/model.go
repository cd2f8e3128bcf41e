package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Code is the human-facing identifier
// (e.g. DOC001) a doctor logs in with.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Code           string    `db:"doctor_code" json:"doctor_code"`
	Name           string    `db:"name" json:"name"`
	Specialization string    `db:"specialization" json:"specialization"`
	HospitalID     uuid.UUID `db:"hospital_id" json:"hospital_id"`
	ContactNumber  *string   `db:"contact_number" json:"contact_number,omitempty"`
	Email          *string   `db:"email" json:"email,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Stats aggregates workload counters for the doctor dashboard. PendingReviews
// is a placeholder that is always zero; no review queue exists yet.
type Stats struct {
	TotalPatients  int `json:"totalPatients"`
	RecentCases    int `json:"recentCases"`
	PendingReviews int `json:"pendingReviews"`
}
