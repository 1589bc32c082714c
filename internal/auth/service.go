package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TokenMode selects which bearer token scheme the service issues.
type TokenMode string

const (
	// TokenModeLegacy issues unsigned structural tokens (token.go). This is
	// the compatibility default.
	TokenModeLegacy TokenMode = "legacy"
	// TokenModeJWT issues HS256-signed expiring session tokens (jwt.go).
	TokenModeJWT TokenMode = "jwt"
)

const defaultSessionTTL = 24 * time.Hour

// Service owns authentication: credential verification, token issuance,
// session resolution, and the dashboard access guard (guard.go).
type Service struct {
	accounts   AccountStore
	now        func() time.Time
	tokenMode  TokenMode
	sessionTTL time.Duration
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service) error

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) error {
		if fn != nil {
			s.now = fn
		}
		return nil
	}
}

// WithTokenMode selects the issued token scheme.
func WithTokenMode(mode TokenMode) ServiceOption {
	return func(s *Service) error {
		switch mode {
		case "", TokenModeLegacy:
			s.tokenMode = TokenModeLegacy
		case TokenModeJWT:
			s.tokenMode = TokenModeJWT
		default:
			return fmt.Errorf("%w: unsupported token mode %q", ErrInvalidInput, mode)
		}
		return nil
	}
}

// WithSessionTTL configures signed session token lifetime.
func WithSessionTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) error {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
		return nil
	}
}

// NewService constructs Service with optional configuration.
func NewService(accounts AccountStore, opts ...ServiceOption) (*Service, error) {
	if accounts == nil {
		return nil, errors.New("account store is required")
	}
	svc := &Service{
		accounts:   accounts,
		now:        time.Now,
		tokenMode:  TokenModeLegacy,
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range opts {
		if err := opt(svc); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// RegisterRequest carries the fields accepted at registration.
type RegisterRequest struct {
	Email        string
	FullName     string
	Password     string
	PhoneNumber  string
	StudentID    string
	Department   string
	YearOfStudy  int
	MembershipID string
	Role         Role
	EntityID     *int64
	Active       *bool
	Verified     *bool
}

// Register creates a new account. The password is hashed before storage; the
// role defaults to MEMBER. Entity references for scoped admin roles are a
// convention, not enforced here.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	role := req.Role
	if role == "" {
		role = RoleMember
	} else if _, ok := allRoles[role]; !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account with this email", ErrConflict)
	}
	if req.StudentID != "" {
		exists, err = s.accounts.ExistsByStudentID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: account with this student id", ErrConflict)
		}
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &Account{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		StudentID:    strings.TrimSpace(req.StudentID),
		Department:   strings.TrimSpace(req.Department),
		YearOfStudy:  req.YearOfStudy,
		MembershipID: strings.TrimSpace(req.MembershipID),
		Role:         role,
		Active:       true,
		Verified:     false,
		EntityID:     req.EntityID,
	}
	if req.Active != nil {
		account.Active = *req.Active
	}
	if req.Verified != nil {
		account.Verified = *req.Verified
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// VerifyCredentials checks a plaintext password against the stored hash for
// an email. On success the last-login timestamp is stamped (advisory,
// last-writer-wins). The boolean never reveals whether the email exists.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (bool, error) {
	account, err := s.accounts.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if VerifyPassword(account.PasswordHash, password) != nil {
		return false, nil
	}
	if err := s.accounts.TouchLastLogin(ctx, account.ID, s.now().UTC()); err != nil {
		return false, err
	}
	return true, nil
}

// Login verifies credentials and mints a bearer token for the account.
// All credential failures collapse into ErrCredentialMismatch.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrCredentialMismatch
	}
	ok, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrCredentialMismatch
	}
	account, err := s.accounts.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrCredentialMismatch
		}
		return "", nil, err
	}
	token, err := s.issueFor(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

func (s *Service) issueFor(account *Account) (string, error) {
	if s.tokenMode == TokenModeJWT {
		return GenerateSessionToken(account, s.sessionTTL)
	}
	return IssueToken(account.Email), nil
}

// TokenWellFormed reports whether the token passes structural validation.
// Signed session tokens are accepted when that mode is enabled.
func (s *Service) TokenWellFormed(token string) bool {
	if ValidateToken(token) {
		return true
	}
	if s.tokenMode == TokenModeJWT {
		_, err := ParseSessionToken(token)
		return err == nil
	}
	return false
}

// ResolveAccount maps a bearer token back to an active account. Malformed
// tokens, unknown emails, and deactivated accounts all resolve to
// ErrInvalidToken so account existence is not leaked.
func (s *Service) ResolveAccount(ctx context.Context, token string) (*Account, error) {
	email, ok := ExtractIdentity(token)
	if !ok {
		if s.tokenMode != TokenModeJWT {
			return nil, ErrInvalidToken
		}
		claims, err := ParseSessionToken(token)
		if err != nil {
			return nil, ErrInvalidToken
		}
		email = claims.Subject
	}
	account, err := s.accounts.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

// Logout is a server-side no-op: legacy tokens carry no revocable state.
// Kept for API symmetry; the client discards the token.
func (s *Service) Logout(ctx context.Context, token string) bool {
	return true
}

// ChangePassword rotates the password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}
	ok, err := s.VerifyCredentials(ctx, email, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCredentialMismatch
	}
	account, err := s.accounts.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCredentialMismatch
		}
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.accounts.UpdatePassword(ctx, account.ID, hash)
}
