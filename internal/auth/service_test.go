package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterDefaults(t *testing.T) {
	svc, _ := newGuardFixture(t)

	account, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@x.edu",
		FullName: "New Member",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.Role != RoleMember {
		t.Fatalf("expected MEMBER default, got %s", account.Role)
	}
	if !account.Active || account.Verified {
		t.Fatalf("unexpected flags: active=%v verified=%v", account.Active, account.Verified)
	}
	if account.PasswordHash == "pw123456" {
		t.Fatalf("password stored in plaintext")
	}
	if err := VerifyPassword(account.PasswordHash, "pw123456"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newGuardFixture(t)

	cases := []RegisterRequest{
		{Email: "", FullName: "X", Password: "pw"},
		{Email: "not-an-email", FullName: "X", Password: "pw"},
		{Email: "a@x.edu", FullName: "", Password: "pw"},
		{Email: "a@x.edu", FullName: "X", Password: ""},
		{Email: "a@x.edu", FullName: "X", Password: "pw", Role: Role("SUPERUSER")},
	}
	for i, req := range cases {
		if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newGuardFixture(t)
	seedAccount(t, store, "dup@x.edu", RoleMember, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dup@x.edu",
		FullName: "Someone Else",
		Password: "pw123456",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterDuplicateStudentID(t *testing.T) {
	svc, _ := newGuardFixture(t)

	first := RegisterRequest{
		Email:     "one@x.edu",
		FullName:  "One",
		Password:  "pw123456",
		StudentID: "S-100",
	}
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("first register: %v", err)
	}

	second := first
	second.Email = "two@x.edu"
	if _, err := svc.Register(context.Background(), second); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on student id, got %v", err)
	}
}

func TestRegisterScopedAdmin(t *testing.T) {
	svc, _ := newGuardFixture(t)

	account, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "society@x.edu",
		FullName: "Society Admin",
		Password: "pw123456",
		Role:     RoleSocietyAdmin,
		EntityID: int64Ptr(5),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.EntityID == nil || *account.EntityID != 5 {
		t.Fatalf("entity reference lost: %v", account.EntityID)
	}
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	svc, store := newGuardFixture(t)
	alice := seedAccount(t, store, "alice@x.edu", RoleSocietyAdmin, int64Ptr(3))

	token, account, err := svc.Login(context.Background(), alice.Email, "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if account.Email != alice.Email {
		t.Fatalf("unexpected account: %s", account.Email)
	}
	if !svc.TokenWellFormed(token) {
		t.Fatalf("issued token is not well formed: %s", token)
	}

	resolved, err := svc.ResolveAccount(context.Background(), token)
	if err != nil {
		t.Fatalf("ResolveAccount: %v", err)
	}
	if resolved.ID != alice.ID {
		t.Fatalf("token resolved to wrong account: %d", resolved.ID)
	}
}

func TestLoginStampsLastLogin(t *testing.T) {
	store := NewInMemoryAccounts()
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc, err := NewService(store, WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	alice := seedAccount(t, store, "alice@x.edu", RoleMember, nil)

	if _, _, err := svc.Login(context.Background(), alice.Email, "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	stored, err := store.Find(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if stored.LastLogin == nil || !stored.LastLogin.Equal(fixed) {
		t.Fatalf("last login not stamped: %v", stored.LastLogin)
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svc, store := newGuardFixture(t)
	seedAccount(t, store, "alice@x.edu", RoleMember, nil)

	cases := []struct {
		email    string
		password string
	}{
		{"alice@x.edu", "wrong-password"},
		{"nobody@x.edu", "secret123"}, // unknown email: same failure
		{"", "secret123"},
		{"alice@x.edu", ""},
	}
	for _, c := range cases {
		_, _, err := svc.Login(context.Background(), c.email, c.password)
		if !errors.Is(err, ErrCredentialMismatch) {
			t.Fatalf("login(%q): expected credential mismatch, got %v", c.email, err)
		}
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, store := newGuardFixture(t)
	alice := seedAccount(t, store, "alice@x.edu", RoleMember, nil)
	alice.Active = false
	if err := store.Update(context.Background(), alice); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, _, err := svc.Login(context.Background(), alice.Email, "secret123")
	if !errors.Is(err, ErrCredentialMismatch) {
		t.Fatalf("expected credential mismatch for inactive account, got %v", err)
	}
}

func TestEmailLookupCaseSensitive(t *testing.T) {
	svc, store := newGuardFixture(t)
	seedAccount(t, store, "Alice@X.edu", RoleMember, nil)

	// Auth lookups are case-sensitive as stored, unlike name search in the
	// content layer.
	_, _, err := svc.Login(context.Background(), "alice@x.edu", "secret123")
	if !errors.Is(err, ErrCredentialMismatch) {
		t.Fatalf("expected mismatch for differently-cased email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "Alice@X.edu", "secret123"); err != nil {
		t.Fatalf("exact-case login failed: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, store := newGuardFixture(t)
	alice := seedAccount(t, store, "alice@x.edu", RoleMember, nil)

	if err := svc.ChangePassword(context.Background(), alice.Email, "secret123", "rotated456"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), alice.Email, "secret123"); !errors.Is(err, ErrCredentialMismatch) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), alice.Email, "rotated456"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, store := newGuardFixture(t)
	alice := seedAccount(t, store, "alice@x.edu", RoleMember, nil)

	err := svc.ChangePassword(context.Background(), alice.Email, "not-it", "rotated456")
	if !errors.Is(err, ErrCredentialMismatch) {
		t.Fatalf("expected credential mismatch, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), alice.Email, "secret123"); err != nil {
		t.Fatalf("original password no longer works: %v", err)
	}
}

func TestLogoutIsNoOp(t *testing.T) {
	svc, store := newGuardFixture(t)
	alice := seedAccount(t, store, "alice@x.edu", RoleMember, nil)
	token := IssueToken(alice.Email)

	if !svc.Logout(context.Background(), token) {
		t.Fatalf("logout reported failure")
	}
	// Stateless tokens survive logout; only the client discards them.
	if _, err := svc.ResolveAccount(context.Background(), token); err != nil {
		t.Fatalf("token unusable after logout: %v", err)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	account := &Account{ID: 7, Email: "ctx@x.edu", Role: RoleAdmin}

	ctx = ContextWithAccount(ctx, account)
	ctx = ContextWithToken(ctx, "tok")

	got, ok := AccountFromContext(ctx)
	if !ok || got.ID != 7 {
		t.Fatalf("account not round-tripped: %v, ok=%v", got, ok)
	}
	token, ok := TokenFromContext(ctx)
	if !ok || token != "tok" {
		t.Fatalf("token not round-tripped: %q, ok=%v", token, ok)
	}

	if _, ok := AccountFromContext(context.Background()); ok {
		t.Fatalf("unexpected account in empty context")
	}
}
