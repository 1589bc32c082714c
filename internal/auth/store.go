package auth

import (
	"context"
	"time"
)

// AccountStore describes persistence operations required by the auth
// subsystem. Lookups by email are case-sensitive as stored.
type AccountStore interface {
	Create(ctx context.Context, a *Account) error
	Find(ctx context.Context, id int64) (*Account, error)
	FindByEmail(ctx context.Context, email string, activeOnly bool) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, a *Account) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
