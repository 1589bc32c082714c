package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"studenthub.org/internal/content"
)

func TestSocietyFindByNameIsCaseInsensitive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`select .* from societies where lower\(name\)=lower\(\$1\)`).
		WithArgs("robotics society").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "image", "description", "vision", "mission", "objectives",
			"slate_members", "is_active", "member_count", "student_member_count",
			"established_year", "created_at", "updated_at",
		}).AddRow(int64(3), "Robotics Society", "", "", "", "", "", "", true, 40, 35, 2015, now, now))

	soc, err := NewWithDB(db).Content().Societies().FindByName(context.Background(), "robotics society")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if soc.ID != 3 || soc.Name != "Robotics Society" {
		t.Fatalf("unexpected society: %+v", soc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPastEventListByOwnerFiltersColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`select .* from past_events where council_id=\$1 order by event_date desc`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "event_date", "image", "description", "participants",
			"hosting_branch_name", "hosting_branch_logo", "venue", "duration_hours",
			"feedback_rating", "society_id", "council_id", "created_at", "updated_at",
		}).AddRow(int64(9), "Gala Night", now, "", "", "", "", "", "Main Hall", 4, 4.5, nil, int64(5), now, now))

	events, err := NewWithDB(db).Content().PastEvents().ListByOwner(context.Background(), content.OwnerCouncil, 5)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if events[0].CouncilID == nil || *events[0].CouncilID != 5 || events[0].SocietyID != nil {
		t.Fatalf("owner columns wrong: %+v", events[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNotificationMarkReadMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`update notifications set unread=false`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewWithDB(db).Content().Notifications().MarkRead(context.Background(), 42)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegistrationCountExcludesCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`select count\(\*\) from event_registrations`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := NewWithDB(db).Content().Registrations().CountByEvent(context.Background(), 8)
	if err != nil {
		t.Fatalf("CountByEvent: %v", err)
	}
	if count != 12 {
		t.Fatalf("unexpected count: %d", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
