package auth

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("auth: not found")
	ErrConflict           = errors.New("auth: already exists")
	ErrInvalidInput       = errors.New("auth: invalid input")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInsufficientRole   = errors.New("insufficient permissions")
	ErrScopeMismatch      = errors.New("entity scope mismatch")
	ErrCredentialMismatch = errors.New("invalid email or password")
)

// RoleError rejects an account whose role is not permitted for the target
// dashboard family. It deliberately does not name the required role.
type RoleError struct {
	Role Role
}

func (e *RoleError) Error() string { return ErrInsufficientRole.Error() }

func (e *RoleError) Unwrap() error { return ErrInsufficientRole }

// ScopeError rejects a scoped admin targeting an entity it does not own.
// The distinction from RoleError is visible to the caller; by this point the
// caller is already authenticated.
type ScopeError struct {
	Kind     EntityKind
	EntityID int64
	OwnedID  *int64
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("access denied for this %s", e.Kind)
}

func (e *ScopeError) Unwrap() error { return ErrScopeMismatch }
