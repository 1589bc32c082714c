package auth

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies what an account may do across the portal.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleExecutive    Role = "EXECUTIVE"
	RoleModerator    Role = "MODERATOR"
	RoleMember       Role = "MEMBER"
	RoleGuest        Role = "GUEST"
	RoleSocietyAdmin Role = "SOCIETY_ADMIN"
	RoleCouncilAdmin Role = "COUNCIL_ADMIN"
)

var allRoles = map[Role]struct{}{
	RoleAdmin:        {},
	RoleExecutive:    {},
	RoleModerator:    {},
	RoleMember:       {},
	RoleGuest:        {},
	RoleSocietyAdmin: {},
	RoleCouncilAdmin: {},
}

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := allRoles[role]; !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return role, nil
}

// EntityKind names the family of dashboard-scoped entities.
type EntityKind string

const (
	KindSociety EntityKind = "society"
	KindCouncil EntityKind = "council"
)

// AdminRole returns the scoped admin role for this entity family.
func (k EntityKind) AdminRole() Role {
	if k == KindCouncil {
		return RoleCouncilAdmin
	}
	return RoleSocietyAdmin
}

// Account represents a person with portal access. Accounts are never hard
// deleted; the Active flag flips instead.
type Account struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	StudentID    string     `json:"student_id,omitempty"`
	Department   string     `json:"department,omitempty"`
	YearOfStudy  int        `json:"year_of_study,omitempty"`
	MembershipID string     `json:"membership_id,omitempty"`
	Role         Role       `json:"role"`
	Active       bool       `json:"is_active"`
	Verified     bool       `json:"email_verified"`
	EntityID     *int64     `json:"entity_id,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AdministersEntity reports whether the account's entity reference equals id.
// Accounts without an entity reference administer nothing.
func (a *Account) AdministersEntity(id int64) bool {
	return a.EntityID != nil && *a.EntityID == id
}
