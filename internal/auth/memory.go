package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// InMemoryAccounts implements AccountStore with in-process concurrency
// safety. Used by tests and by deployments without a database DSN.
type InMemoryAccounts struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*Account
	byEmail map[string]int64
}

// NewInMemoryAccounts creates an empty account store.
func NewInMemoryAccounts() *InMemoryAccounts {
	return &InMemoryAccounts{
		nextID:  1,
		byID:    make(map[int64]*Account),
		byEmail: make(map[string]int64),
	}
}

var _ AccountStore = (*InMemoryAccounts)(nil)

func (s *InMemoryAccounts) Create(ctx context.Context, a *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[a.Email]; ok {
		return fmt.Errorf("%w: email %s", ErrConflict, a.Email)
	}
	a.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	stored := *a
	s.byID[a.ID] = &stored
	s.byEmail[a.Email] = a.ID
	return nil
}

func (s *InMemoryAccounts) Find(ctx context.Context, id int64) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *a
	return &out, nil
}

func (s *InMemoryAccounts) FindByEmail(ctx context.Context, email string, activeOnly bool) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	a := s.byID[id]
	if activeOnly && !a.Active {
		return nil, ErrNotFound
	}
	out := *a
	return &out, nil
}

func (s *InMemoryAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byEmail[email]
	return ok, nil
}

func (s *InMemoryAccounts) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.byID {
		if a.StudentID != "" && a.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryAccounts) Update(ctx context.Context, a *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[a.ID]
	if !ok {
		return ErrNotFound
	}
	if existing.Email != a.Email {
		if _, taken := s.byEmail[a.Email]; taken {
			return fmt.Errorf("%w: email %s", ErrConflict, a.Email)
		}
		delete(s.byEmail, existing.Email)
		s.byEmail[a.Email] = a.ID
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	stored := *a
	s.byID[a.ID] = &stored
	return nil
}

func (s *InMemoryAccounts) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *InMemoryAccounts) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.LastLogin = &at
	return nil
}
