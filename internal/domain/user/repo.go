package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists login accounts. Lookups return (nil, nil) when no
// row matches. Create returns ErrDuplicate when (role, role_id) is taken.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByRoleID(ctx context.Context, role, roleID string) (*User, error)
}
