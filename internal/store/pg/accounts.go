package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studenthub.org/internal/auth"
)

type accountStore struct {
	db *sql.DB
}

var _ auth.AccountStore = (*accountStore)(nil)

const accountColumns = `id, email, full_name, password_hash, phone_number, student_id, department,
	year_of_study, membership_id, role, is_active, is_verified, entity_id, last_login, created_at, updated_at`

func (s *accountStore) Create(ctx context.Context, a *auth.Account) error {
	err := s.db.QueryRowContext(ctx, `
		insert into accounts(email, full_name, password_hash, phone_number, student_id, department,
			year_of_study, membership_id, role, is_active, is_verified, entity_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		returning id, created_at, updated_at
	`, a.Email, a.FullName, a.PasswordHash, a.PhoneNumber, a.StudentID, a.Department,
		a.YearOfStudy, a.MembershipID, string(a.Role), a.Active, a.Verified, a.EntityID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if isUniqueViolation(err) {
		return auth.ErrConflict
	}
	return err
}

func (s *accountStore) Find(ctx context.Context, id int64) (*auth.Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+accountColumns+` from accounts where id=$1`, id))
}

func (s *accountStore) FindByEmail(ctx context.Context, email string, activeOnly bool) (*auth.Account, error) {
	query := `select ` + accountColumns + ` from accounts where email=$1`
	if activeOnly {
		query += ` and is_active`
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, email))
}

func (s *accountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`select exists(select 1 from accounts where email=$1)`, email).Scan(&exists)
	return exists, err
}

func (s *accountStore) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`select exists(select 1 from accounts where student_id=$1)`, studentID).Scan(&exists)
	return exists, err
}

func (s *accountStore) Update(ctx context.Context, a *auth.Account) error {
	res, err := s.db.ExecContext(ctx, `
		update accounts
		set email=$2, full_name=$3, phone_number=$4, student_id=$5, department=$6,
			year_of_study=$7, membership_id=$8, role=$9, is_active=$10, is_verified=$11,
			entity_id=$12, updated_at=now()
		where id=$1
	`, a.ID, a.Email, a.FullName, a.PhoneNumber, a.StudentID, a.Department,
		a.YearOfStudy, a.MembershipID, string(a.Role), a.Active, a.Verified, a.EntityID)
	if isUniqueViolation(err) {
		return auth.ErrConflict
	}
	if err != nil {
		return err
	}
	return requireRow(res, auth.ErrNotFound)
}

func (s *accountStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`update accounts set password_hash=$2, updated_at=now() where id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	return requireRow(res, auth.ErrNotFound)
}

func (s *accountStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`update accounts set last_login=$2 where id=$1`, id, at)
	if err != nil {
		return err
	}
	return requireRow(res, auth.ErrNotFound)
}

func (s *accountStore) scanOne(row *sql.Row) (*auth.Account, error) {
	var a auth.Account
	var role string
	var entityID sql.NullInt64
	var lastLogin sql.NullTime
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &a.PasswordHash, &a.PhoneNumber, &a.StudentID,
		&a.Department, &a.YearOfStudy, &a.MembershipID, &role, &a.Active, &a.Verified,
		&entityID, &lastLogin, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Role = auth.Role(role)
	a.EntityID = nullableInt64(entityID)
	a.LastLogin = nullableTime(lastLogin)
	return &a, nil
}

func requireRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}
