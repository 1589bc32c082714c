package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"studenthub.org/internal/auth"
)

var accountRows = []string{
	"id", "email", "full_name", "password_hash", "phone_number", "student_id", "department",
	"year_of_study", "membership_id", "role", "is_active", "is_verified", "entity_id",
	"last_login", "created_at", "updated_at",
}

func TestAccountFindByEmailActiveOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`select .* from accounts where email=\$1 and is_active`).
		WithArgs("alice@x.edu").
		WillReturnRows(sqlmock.NewRows(accountRows).AddRow(
			int64(7), "alice@x.edu", "Alice", "hash", "", "ST-1", "CS", 3, "M-9",
			"SOCIETY_ADMIN", true, true, int64(3), nil, now, now,
		))

	store := NewWithDB(db).Accounts()
	account, err := store.FindByEmail(context.Background(), "alice@x.edu", true)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if account.ID != 7 || account.Role != auth.RoleSocietyAdmin {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.EntityID == nil || *account.EntityID != 3 {
		t.Fatalf("entity scope lost: %v", account.EntityID)
	}
	if account.LastLogin != nil {
		t.Fatalf("expected nil last login, got %v", account.LastLogin)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountFindMapsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`select .* from accounts where id=\$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	store := NewWithDB(db).Accounts()
	if _, err := store.Find(context.Background(), 99); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`insert into accounts`).
		WithArgs("bob@x.edu", "Bob", "hash", "", "", "", 0, "", "MEMBER", true, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(11), now, now))

	store := NewWithDB(db).Accounts()
	account := &auth.Account{
		Email:        "bob@x.edu",
		FullName:     "Bob",
		PasswordHash: "hash",
		Role:         auth.RoleMember,
		Active:       true,
	}
	if err := store.Create(context.Background(), account); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if account.ID != 11 {
		t.Fatalf("id not assigned: %d", account.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTouchLastLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`update accounts set last_login=\$2 where id=\$1`).
		WithArgs(int64(7), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewWithDB(db).Accounts()
	if err := store.TouchLastLogin(context.Background(), 7, at); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
