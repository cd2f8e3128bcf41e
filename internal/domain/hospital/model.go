package hospital

import (
	"time"

	"github.com/google/uuid"
)

// Hospital maps to the hospitals table. Code is the human-facing hospital
// identifier (e.g. HOSP001) used as a hospital admin's login identity.
type Hospital struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Code          string    `db:"hospital_code" json:"hospital_code"`
	Name          string    `db:"name" json:"name"`
	Location      string    `db:"location" json:"location"`
	ContactNumber *string   `db:"contact_number" json:"contact_number,omitempty"`
	Email         *string   `db:"email" json:"email,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
