package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/arogya/arogya/internal/platform/auth"
)

var (
	// ErrDuplicate means the (role, role_id) pair is already registered.
	ErrDuplicate = errors.New("user with this id already exists")
	// ErrInvalidCredentials covers both unknown accounts and wrong
	// passwords so login failures are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var validRoles = map[string]bool{
	RoleDoctor:   true,
	RolePatient:  true,
	RoleHospital: true,
}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Registration carries the fields a new account signs up with. Email and
// Phone are optional contact details.
type Registration struct {
	Name     string
	Role     string
	RoleID   string
	Password string
	Email    *string
	Phone    *string
}

// Register creates a login account. The pre-insert lookup gives a friendly
// error on the common path; the unique constraint on (role, role_id) closes
// the race when two registrations collide.
func (s *Service) Register(ctx context.Context, in Registration) (*User, error) {
	if !validRoles[in.Role] {
		return nil, fmt.Errorf("invalid role %q", in.Role)
	}
	if in.RoleID == "" {
		return nil, fmt.Errorf("role_id is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	existing, err := s.repo.GetByRoleID(ctx, in.Role, in.RoleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:     in.Name,
		Role:     in.Role,
		RoleID:   in.RoleID,
		Password: hash,
		Email:    in.Email,
		Phone:    in.Phone,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks credentials. Unknown account and wrong password both return
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, role, roleID, password string) (*User, error) {
	u, err := s.repo.GetByRoleID(ctx, role, roleID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(u.Password, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
