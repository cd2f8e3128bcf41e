package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles a login account can carry.
const (
	RoleDoctor   = "doctor"
	RolePatient  = "patient"
	RoleHospital = "hospital"
)

// User is a login account. RoleID is the role-scoped business code the
// person signs in with (DOC001, PT0001, HOSP001); (Role, RoleID) is unique.
// Password holds the bcrypt hash and never serializes.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	RoleID    string    `db:"role_id" json:"role_id"`
	Password  string    `db:"password" json:"-"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
