package pg

import (
	"context"
	"database/sql"
	"errors"

	"studenthub.org/internal/content"
)

type contentStore struct {
	db *sql.DB
}

var _ content.Store = (*contentStore)(nil)

func (s *contentStore) Societies() content.SocietyStore       { return &societyStore{db: s.db} }
func (s *contentStore) Councils() content.CouncilStore        { return &councilStore{db: s.db} }
func (s *contentStore) PastEvents() content.PastEventStore    { return &pastEventStore{db: s.db} }
func (s *contentStore) UpcomingEvents() content.UpcomingEventStore {
	return &upcomingEventStore{db: s.db}
}
func (s *contentStore) Achievements() content.AchievementStore { return &achievementStore{db: s.db} }
func (s *contentStore) Gallery() content.GalleryStore          { return &galleryStore{db: s.db} }
func (s *contentStore) Notifications() content.NotificationStore {
	return &notificationStore{db: s.db}
}
func (s *contentStore) HeroSlides() content.HeroSlideStore { return &heroSlideStore{db: s.db} }
func (s *contentStore) Registrations() content.RegistrationStore {
	return &registrationStore{db: s.db}
}

// ownerColumn maps a dashboard family to its foreign key column.
func ownerColumn(kind content.OwnerKind) string {
	if kind == content.OwnerCouncil {
		return "council_id"
	}
	return "society_id"
}

func mapNotFound(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

// Societies ----------------------------------------------------------------

type societyStore struct {
	db *sql.DB
}

const societyColumns = `id, name, image, description, vision, mission, objectives, slate_members,
	is_active, member_count, student_member_count, established_year, created_at, updated_at`

func (s *societyStore) Create(ctx context.Context, soc *content.Society) error {
	err := s.db.QueryRowContext(ctx, `
		insert into societies(name, image, description, vision, mission, objectives, slate_members,
			is_active, member_count, student_member_count, established_year, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, now(), now())
		returning id, created_at, updated_at
	`, soc.Name, soc.Image, soc.Description, soc.Vision, soc.Mission, soc.Objectives, soc.SlateMembers,
		soc.Active, soc.MemberCount, soc.StudentMemberCount, soc.EstablishedYear,
	).Scan(&soc.ID, &soc.CreatedAt, &soc.UpdatedAt)
	if isUniqueViolation(err) {
		return content.ErrConflict
	}
	return err
}

func (s *societyStore) Find(ctx context.Context, id int64) (*content.Society, error) {
	return scanSociety(s.db.QueryRowContext(ctx,
		`select `+societyColumns+` from societies where id=$1`, id))
}

func (s *societyStore) FindByName(ctx context.Context, name string) (*content.Society, error) {
	return scanSociety(s.db.QueryRowContext(ctx,
		`select `+societyColumns+` from societies where lower(name)=lower($1)`, name))
}

func (s *societyStore) List(ctx context.Context, activeOnly bool) ([]*content.Society, error) {
	query := `select ` + societyColumns + ` from societies`
	if activeOnly {
		query += ` where is_active`
	}
	query += ` order by id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.Society
	for rows.Next() {
		soc, err := scanSocietyRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, soc)
	}
	return out, rows.Err()
}

func (s *societyStore) Update(ctx context.Context, soc *content.Society) error {
	res, err := s.db.ExecContext(ctx, `
		update societies
		set name=$2, image=$3, description=$4, vision=$5, mission=$6, objectives=$7,
			slate_members=$8, is_active=$9, member_count=$10, student_member_count=$11,
			established_year=$12, updated_at=now()
		where id=$1
	`, soc.ID, soc.Name, soc.Image, soc.Description, soc.Vision, soc.Mission, soc.Objectives,
		soc.SlateMembers, soc.Active, soc.MemberCount, soc.StudentMemberCount, soc.EstablishedYear)
	if isUniqueViolation(err) {
		return content.ErrConflict
	}
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *societyStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from societies where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSocietyFrom(row rowScanner) (*content.Society, error) {
	var soc content.Society
	err := row.Scan(&soc.ID, &soc.Name, &soc.Image, &soc.Description, &soc.Vision, &soc.Mission,
		&soc.Objectives, &soc.SlateMembers, &soc.Active, &soc.MemberCount, &soc.StudentMemberCount,
		&soc.EstablishedYear, &soc.CreatedAt, &soc.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	return &soc, nil
}

func scanSociety(row *sql.Row) (*content.Society, error)      { return scanSocietyFrom(row) }
func scanSocietyRows(rows *sql.Rows) (*content.Society, error) { return scanSocietyFrom(rows) }

// Councils -----------------------------------------------------------------

type councilStore struct {
	db *sql.DB
}

const councilColumns = `id, name, image, description, vision, mission, objectives, chair_person,
	slate_members, website_url, is_active, member_count, student_member_count, established_year,
	created_at, updated_at`

func (s *councilStore) Create(ctx context.Context, c *content.Council) error {
	err := s.db.QueryRowContext(ctx, `
		insert into councils(name, image, description, vision, mission, objectives, chair_person,
			slate_members, website_url, is_active, member_count, student_member_count,
			established_year, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, now(), now())
		returning id, created_at, updated_at
	`, c.Name, c.Image, c.Description, c.Vision, c.Mission, c.Objectives, c.ChairPerson,
		c.SlateMembers, c.WebsiteURL, c.Active, c.MemberCount, c.StudentMemberCount, c.EstablishedYear,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return content.ErrConflict
	}
	return err
}

func (s *councilStore) Find(ctx context.Context, id int64) (*content.Council, error) {
	return scanCouncil(s.db.QueryRowContext(ctx,
		`select `+councilColumns+` from councils where id=$1`, id))
}

func (s *councilStore) FindByName(ctx context.Context, name string) (*content.Council, error) {
	return scanCouncil(s.db.QueryRowContext(ctx,
		`select `+councilColumns+` from councils where lower(name)=lower($1)`, name))
}

func (s *councilStore) List(ctx context.Context, activeOnly bool) ([]*content.Council, error) {
	query := `select ` + councilColumns + ` from councils`
	if activeOnly {
		query += ` where is_active`
	}
	query += ` order by id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.Council
	for rows.Next() {
		c, err := scanCouncilFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *councilStore) Update(ctx context.Context, c *content.Council) error {
	res, err := s.db.ExecContext(ctx, `
		update councils
		set name=$2, image=$3, description=$4, vision=$5, mission=$6, objectives=$7,
			chair_person=$8, slate_members=$9, website_url=$10, is_active=$11, member_count=$12,
			student_member_count=$13, established_year=$14, updated_at=now()
		where id=$1
	`, c.ID, c.Name, c.Image, c.Description, c.Vision, c.Mission, c.Objectives, c.ChairPerson,
		c.SlateMembers, c.WebsiteURL, c.Active, c.MemberCount, c.StudentMemberCount, c.EstablishedYear)
	if isUniqueViolation(err) {
		return content.ErrConflict
	}
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *councilStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from councils where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanCouncilFrom(row rowScanner) (*content.Council, error) {
	var c content.Council
	err := row.Scan(&c.ID, &c.Name, &c.Image, &c.Description, &c.Vision, &c.Mission, &c.Objectives,
		&c.ChairPerson, &c.SlateMembers, &c.WebsiteURL, &c.Active, &c.MemberCount,
		&c.StudentMemberCount, &c.EstablishedYear, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	return &c, nil
}

func scanCouncil(row *sql.Row) (*content.Council, error) { return scanCouncilFrom(row) }

// Past events --------------------------------------------------------------

type pastEventStore struct {
	db *sql.DB
}

const pastEventColumns = `id, title, event_date, image, description, participants,
	hosting_branch_name, hosting_branch_logo, venue, duration_hours, feedback_rating,
	society_id, council_id, created_at, updated_at`

func (s *pastEventStore) Create(ctx context.Context, e *content.PastEvent) error {
	return s.db.QueryRowContext(ctx, `
		insert into past_events(title, event_date, image, description, participants,
			hosting_branch_name, hosting_branch_logo, venue, duration_hours, feedback_rating,
			society_id, council_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		returning id, created_at, updated_at
	`, e.Title, e.EventDate, e.Image, e.Description, e.Participants, e.HostingBranchName,
		e.HostingBranchLogo, e.Venue, e.DurationHours, e.FeedbackRating, e.SocietyID, e.CouncilID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (s *pastEventStore) Find(ctx context.Context, id int64) (*content.PastEvent, error) {
	return scanPastEvent(s.db.QueryRowContext(ctx,
		`select `+pastEventColumns+` from past_events where id=$1`, id))
}

func (s *pastEventStore) List(ctx context.Context) ([]*content.PastEvent, error) {
	return s.list(ctx, `select `+pastEventColumns+` from past_events order by event_date desc`)
}

func (s *pastEventStore) ListByOwner(ctx context.Context, kind content.OwnerKind, ownerID int64) ([]*content.PastEvent, error) {
	query := `select ` + pastEventColumns + ` from past_events where ` + ownerColumn(kind) + `=$1 order by event_date desc`
	return s.list(ctx, query, ownerID)
}

func (s *pastEventStore) list(ctx context.Context, query string, args ...any) ([]*content.PastEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.PastEvent
	for rows.Next() {
		e, err := scanPastEventFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *pastEventStore) Update(ctx context.Context, e *content.PastEvent) error {
	res, err := s.db.ExecContext(ctx, `
		update past_events
		set title=$2, event_date=$3, image=$4, description=$5, participants=$6,
			hosting_branch_name=$7, hosting_branch_logo=$8, venue=$9, duration_hours=$10,
			feedback_rating=$11, updated_at=now()
		where id=$1
	`, e.ID, e.Title, e.EventDate, e.Image, e.Description, e.Participants, e.HostingBranchName,
		e.HostingBranchLogo, e.Venue, e.DurationHours, e.FeedbackRating)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *pastEventStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from past_events where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanPastEventFrom(row rowScanner) (*content.PastEvent, error) {
	var e content.PastEvent
	var societyID, councilID sql.NullInt64
	err := row.Scan(&e.ID, &e.Title, &e.EventDate, &e.Image, &e.Description, &e.Participants,
		&e.HostingBranchName, &e.HostingBranchLogo, &e.Venue, &e.DurationHours, &e.FeedbackRating,
		&societyID, &councilID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	e.SocietyID = nullableInt64(societyID)
	e.CouncilID = nullableInt64(councilID)
	return &e, nil
}

func scanPastEvent(row *sql.Row) (*content.PastEvent, error) { return scanPastEventFrom(row) }

// Upcoming events ----------------------------------------------------------

type upcomingEventStore struct {
	db *sql.DB
}

const upcomingEventColumns = `id, title, event_date, image, description, hosting_branch_name,
	hosting_branch_logo, venue, registration_deadline, max_participants, registration_fee,
	is_registration_open, event_type, society_id, council_id, created_at, updated_at`

func (s *upcomingEventStore) Create(ctx context.Context, e *content.UpcomingEvent) error {
	return s.db.QueryRowContext(ctx, `
		insert into upcoming_events(title, event_date, image, description, hosting_branch_name,
			hosting_branch_logo, venue, registration_deadline, max_participants, registration_fee,
			is_registration_open, event_type, society_id, council_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, now(), now())
		returning id, created_at, updated_at
	`, e.Title, e.EventDate, e.Image, e.Description, e.HostingBranchName, e.HostingBranchLogo,
		e.Venue, e.RegistrationDeadline, e.MaxParticipants, e.RegistrationFee, e.RegistrationOpen,
		string(e.EventType), e.SocietyID, e.CouncilID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (s *upcomingEventStore) Find(ctx context.Context, id int64) (*content.UpcomingEvent, error) {
	return scanUpcomingEvent(s.db.QueryRowContext(ctx,
		`select `+upcomingEventColumns+` from upcoming_events where id=$1`, id))
}

func (s *upcomingEventStore) List(ctx context.Context) ([]*content.UpcomingEvent, error) {
	return s.list(ctx, `select `+upcomingEventColumns+` from upcoming_events order by event_date`)
}

func (s *upcomingEventStore) ListByOwner(ctx context.Context, kind content.OwnerKind, ownerID int64) ([]*content.UpcomingEvent, error) {
	query := `select ` + upcomingEventColumns + ` from upcoming_events where ` + ownerColumn(kind) + `=$1 order by event_date`
	return s.list(ctx, query, ownerID)
}

func (s *upcomingEventStore) list(ctx context.Context, query string, args ...any) ([]*content.UpcomingEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.UpcomingEvent
	for rows.Next() {
		e, err := scanUpcomingEventFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *upcomingEventStore) Update(ctx context.Context, e *content.UpcomingEvent) error {
	res, err := s.db.ExecContext(ctx, `
		update upcoming_events
		set title=$2, event_date=$3, image=$4, description=$5, hosting_branch_name=$6,
			hosting_branch_logo=$7, venue=$8, registration_deadline=$9, max_participants=$10,
			registration_fee=$11, is_registration_open=$12, event_type=$13, updated_at=now()
		where id=$1
	`, e.ID, e.Title, e.EventDate, e.Image, e.Description, e.HostingBranchName, e.HostingBranchLogo,
		e.Venue, e.RegistrationDeadline, e.MaxParticipants, e.RegistrationFee, e.RegistrationOpen,
		string(e.EventType))
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *upcomingEventStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from upcoming_events where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanUpcomingEventFrom(row rowScanner) (*content.UpcomingEvent, error) {
	var e content.UpcomingEvent
	var deadline sql.NullTime
	var eventType string
	var societyID, councilID sql.NullInt64
	err := row.Scan(&e.ID, &e.Title, &e.EventDate, &e.Image, &e.Description, &e.HostingBranchName,
		&e.HostingBranchLogo, &e.Venue, &deadline, &e.MaxParticipants, &e.RegistrationFee,
		&e.RegistrationOpen, &eventType, &societyID, &councilID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	e.RegistrationDeadline = nullableTime(deadline)
	e.EventType = content.EventType(eventType)
	e.SocietyID = nullableInt64(societyID)
	e.CouncilID = nullableInt64(councilID)
	return &e, nil
}

func scanUpcomingEvent(row *sql.Row) (*content.UpcomingEvent, error) {
	return scanUpcomingEventFrom(row)
}

// Achievements -------------------------------------------------------------

type achievementStore struct {
	db *sql.DB
}

const achievementColumns = `id, title, year, description, image, award_category,
	awarding_organization, recipient_name, achievement_date, is_featured, society_id, council_id,
	created_at, updated_at`

func (s *achievementStore) Create(ctx context.Context, a *content.Achievement) error {
	return s.db.QueryRowContext(ctx, `
		insert into achievements(title, year, description, image, award_category,
			awarding_organization, recipient_name, achievement_date, is_featured, society_id,
			council_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, now(), now())
		returning id, created_at, updated_at
	`, a.Title, a.Year, a.Description, a.Image, a.AwardCategory, a.AwardingOrganization,
		a.RecipientName, a.AchievementDate, a.Featured, a.SocietyID, a.CouncilID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (s *achievementStore) Find(ctx context.Context, id int64) (*content.Achievement, error) {
	return scanAchievement(s.db.QueryRowContext(ctx,
		`select `+achievementColumns+` from achievements where id=$1`, id))
}

func (s *achievementStore) List(ctx context.Context) ([]*content.Achievement, error) {
	return s.list(ctx, `select `+achievementColumns+` from achievements order by id`)
}

func (s *achievementStore) ListByOwner(ctx context.Context, kind content.OwnerKind, ownerID int64) ([]*content.Achievement, error) {
	query := `select ` + achievementColumns + ` from achievements where ` + ownerColumn(kind) + `=$1 order by id`
	return s.list(ctx, query, ownerID)
}

func (s *achievementStore) ListFeatured(ctx context.Context) ([]*content.Achievement, error) {
	return s.list(ctx, `select `+achievementColumns+` from achievements where is_featured order by id`)
}

func (s *achievementStore) list(ctx context.Context, query string, args ...any) ([]*content.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.Achievement
	for rows.Next() {
		a, err := scanAchievementFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *achievementStore) Update(ctx context.Context, a *content.Achievement) error {
	res, err := s.db.ExecContext(ctx, `
		update achievements
		set title=$2, year=$3, description=$4, image=$5, award_category=$6,
			awarding_organization=$7, recipient_name=$8, achievement_date=$9, is_featured=$10,
			updated_at=now()
		where id=$1
	`, a.ID, a.Title, a.Year, a.Description, a.Image, a.AwardCategory, a.AwardingOrganization,
		a.RecipientName, a.AchievementDate, a.Featured)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *achievementStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from achievements where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanAchievementFrom(row rowScanner) (*content.Achievement, error) {
	var a content.Achievement
	var achievedAt sql.NullTime
	var societyID, councilID sql.NullInt64
	err := row.Scan(&a.ID, &a.Title, &a.Year, &a.Description, &a.Image, &a.AwardCategory,
		&a.AwardingOrganization, &a.RecipientName, &achievedAt, &a.Featured, &societyID,
		&councilID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	a.AchievementDate = nullableTime(achievedAt)
	a.SocietyID = nullableInt64(societyID)
	a.CouncilID = nullableInt64(councilID)
	return &a, nil
}

func scanAchievement(row *sql.Row) (*content.Achievement, error) { return scanAchievementFrom(row) }

// Gallery ------------------------------------------------------------------

type galleryStore struct {
	db *sql.DB
}

const galleryColumns = `id, image, url, height, width, title, description, alt_text, category,
	tags, is_featured, upload_date, society_id, council_id, created_at, updated_at`

func (s *galleryStore) Create(ctx context.Context, g *content.GalleryItem) error {
	return s.db.QueryRowContext(ctx, `
		insert into gallery_items(image, url, height, width, title, description, alt_text,
			category, tags, is_featured, upload_date, society_id, council_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, now(), now())
		returning id, created_at, updated_at
	`, g.Image, g.URL, g.Height, g.Width, g.Title, g.Description, g.AltText, g.Category, g.Tags,
		g.Featured, g.UploadDate, g.SocietyID, g.CouncilID,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (s *galleryStore) Find(ctx context.Context, id int64) (*content.GalleryItem, error) {
	return scanGalleryItem(s.db.QueryRowContext(ctx,
		`select `+galleryColumns+` from gallery_items where id=$1`, id))
}

func (s *galleryStore) List(ctx context.Context) ([]*content.GalleryItem, error) {
	return s.list(ctx, `select `+galleryColumns+` from gallery_items order by upload_date desc`)
}

func (s *galleryStore) ListByOwner(ctx context.Context, kind content.OwnerKind, ownerID int64) ([]*content.GalleryItem, error) {
	query := `select ` + galleryColumns + ` from gallery_items where ` + ownerColumn(kind) + `=$1 order by upload_date desc`
	return s.list(ctx, query, ownerID)
}

func (s *galleryStore) ListByCategory(ctx context.Context, category string) ([]*content.GalleryItem, error) {
	return s.list(ctx,
		`select `+galleryColumns+` from gallery_items where lower(category)=lower($1) order by upload_date desc`,
		category)
}

func (s *galleryStore) list(ctx context.Context, query string, args ...any) ([]*content.GalleryItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.GalleryItem
	for rows.Next() {
		g, err := scanGalleryItemFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *galleryStore) Update(ctx context.Context, g *content.GalleryItem) error {
	res, err := s.db.ExecContext(ctx, `
		update gallery_items
		set image=$2, url=$3, height=$4, width=$5, title=$6, description=$7, alt_text=$8,
			category=$9, tags=$10, is_featured=$11, updated_at=now()
		where id=$1
	`, g.ID, g.Image, g.URL, g.Height, g.Width, g.Title, g.Description, g.AltText, g.Category,
		g.Tags, g.Featured)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *galleryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from gallery_items where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanGalleryItemFrom(row rowScanner) (*content.GalleryItem, error) {
	var g content.GalleryItem
	var societyID, councilID sql.NullInt64
	err := row.Scan(&g.ID, &g.Image, &g.URL, &g.Height, &g.Width, &g.Title, &g.Description,
		&g.AltText, &g.Category, &g.Tags, &g.Featured, &g.UploadDate, &societyID, &councilID,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	g.SocietyID = nullableInt64(societyID)
	g.CouncilID = nullableInt64(councilID)
	return &g, nil
}

func scanGalleryItem(row *sql.Row) (*content.GalleryItem, error) { return scanGalleryItemFrom(row) }

// Notifications ------------------------------------------------------------

type notificationStore struct {
	db *sql.DB
}

const notificationColumns = `id, title, message, notify_time, type, unread, priority, expiry_date,
	target_audience, related_event_id, society_id, created_at, updated_at`

func (s *notificationStore) Create(ctx context.Context, n *content.Notification) error {
	return s.db.QueryRowContext(ctx, `
		insert into notifications(title, message, notify_time, type, unread, priority, expiry_date,
			target_audience, related_event_id, society_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, now(), now())
		returning id, created_at, updated_at
	`, n.Title, n.Message, n.Time, string(n.Type), n.Unread, string(n.Priority), n.ExpiryDate,
		n.TargetAudience, n.RelatedEventID, n.SocietyID,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (s *notificationStore) Find(ctx context.Context, id int64) (*content.Notification, error) {
	return scanNotification(s.db.QueryRowContext(ctx,
		`select `+notificationColumns+` from notifications where id=$1`, id))
}

func (s *notificationStore) List(ctx context.Context, unreadOnly bool) ([]*content.Notification, error) {
	query := `select ` + notificationColumns + ` from notifications`
	if unreadOnly {
		query += ` where unread`
	}
	query += ` order by notify_time desc`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.Notification
	for rows.Next() {
		n, err := scanNotificationFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *notificationStore) MarkRead(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`update notifications set unread=false, updated_at=now() where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *notificationStore) Update(ctx context.Context, n *content.Notification) error {
	res, err := s.db.ExecContext(ctx, `
		update notifications
		set title=$2, message=$3, notify_time=$4, type=$5, unread=$6, priority=$7, expiry_date=$8,
			target_audience=$9, related_event_id=$10, society_id=$11, updated_at=now()
		where id=$1
	`, n.ID, n.Title, n.Message, n.Time, string(n.Type), n.Unread, string(n.Priority),
		n.ExpiryDate, n.TargetAudience, n.RelatedEventID, n.SocietyID)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *notificationStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from notifications where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanNotificationFrom(row rowScanner) (*content.Notification, error) {
	var n content.Notification
	var kind, priority string
	var expiry sql.NullTime
	var relatedEventID, societyID sql.NullInt64
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Time, &kind, &n.Unread, &priority, &expiry,
		&n.TargetAudience, &relatedEventID, &societyID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	n.Type = content.NotificationType(kind)
	n.Priority = content.Priority(priority)
	n.ExpiryDate = nullableTime(expiry)
	n.RelatedEventID = nullableInt64(relatedEventID)
	n.SocietyID = nullableInt64(societyID)
	return &n, nil
}

func scanNotification(row *sql.Row) (*content.Notification, error) {
	return scanNotificationFrom(row)
}

// Hero slides --------------------------------------------------------------

type heroSlideStore struct {
	db *sql.DB
}

const heroSlideColumns = `id, title, subtitle, image, description, display_order, is_active,
	button_text, button_url, background_color, text_color, created_at, updated_at`

func (s *heroSlideStore) Create(ctx context.Context, h *content.HeroSlide) error {
	return s.db.QueryRowContext(ctx, `
		insert into hero_slides(title, subtitle, image, description, display_order, is_active,
			button_text, button_url, background_color, text_color, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, now(), now())
		returning id, created_at, updated_at
	`, h.Title, h.Subtitle, h.Image, h.Description, h.DisplayOrder, h.Active, h.ButtonText,
		h.ButtonURL, h.BackgroundColor, h.TextColor,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (s *heroSlideStore) Find(ctx context.Context, id int64) (*content.HeroSlide, error) {
	return scanHeroSlide(s.db.QueryRowContext(ctx,
		`select `+heroSlideColumns+` from hero_slides where id=$1`, id))
}

func (s *heroSlideStore) List(ctx context.Context, activeOnly bool) ([]*content.HeroSlide, error) {
	query := `select ` + heroSlideColumns + ` from hero_slides`
	if activeOnly {
		query += ` where is_active`
	}
	query += ` order by display_order, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.HeroSlide
	for rows.Next() {
		h, err := scanHeroSlideFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *heroSlideStore) Update(ctx context.Context, h *content.HeroSlide) error {
	res, err := s.db.ExecContext(ctx, `
		update hero_slides
		set title=$2, subtitle=$3, image=$4, description=$5, display_order=$6, is_active=$7,
			button_text=$8, button_url=$9, background_color=$10, text_color=$11, updated_at=now()
		where id=$1
	`, h.ID, h.Title, h.Subtitle, h.Image, h.Description, h.DisplayOrder, h.Active, h.ButtonText,
		h.ButtonURL, h.BackgroundColor, h.TextColor)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func (s *heroSlideStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from hero_slides where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanHeroSlideFrom(row rowScanner) (*content.HeroSlide, error) {
	var h content.HeroSlide
	err := row.Scan(&h.ID, &h.Title, &h.Subtitle, &h.Image, &h.Description, &h.DisplayOrder,
		&h.Active, &h.ButtonText, &h.ButtonURL, &h.BackgroundColor, &h.TextColor, &h.CreatedAt,
		&h.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	return &h, nil
}

func scanHeroSlide(row *sql.Row) (*content.HeroSlide, error) { return scanHeroSlideFrom(row) }

// Registrations ------------------------------------------------------------

type registrationStore struct {
	db *sql.DB
}

const registrationColumns = `id, user_id, event_id, registration_date, status, payment_status,
	payment_amount, payment_reference, special_requirements, attendance_status, feedback_rating,
	feedback_comments, certificate_issued, created_at, updated_at`

func (s *registrationStore) Create(ctx context.Context, r *content.EventRegistration) error {
	err := s.db.QueryRowContext(ctx, `
		insert into event_registrations(user_id, event_id, registration_date, status,
			payment_status, payment_amount, payment_reference, special_requirements,
			attendance_status, feedback_rating, feedback_comments, certificate_issued,
			created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		returning id, created_at, updated_at
	`, r.UserID, r.EventID, r.RegistrationDate, string(r.Status), string(r.PaymentStatus),
		r.PaymentAmount, r.PaymentReference, r.SpecialRequirements, string(r.AttendanceStatus),
		r.FeedbackRating, r.FeedbackComments, r.CertificateIssued,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if isUniqueViolation(err) {
		return content.ErrConflict
	}
	return err
}

func (s *registrationStore) Find(ctx context.Context, id int64) (*content.EventRegistration, error) {
	return scanRegistration(s.db.QueryRowContext(ctx,
		`select `+registrationColumns+` from event_registrations where id=$1`, id))
}

func (s *registrationStore) ListByEvent(ctx context.Context, eventID int64) ([]*content.EventRegistration, error) {
	return s.list(ctx,
		`select `+registrationColumns+` from event_registrations where event_id=$1 order by id`, eventID)
}

func (s *registrationStore) ListByUser(ctx context.Context, userID int64) ([]*content.EventRegistration, error) {
	return s.list(ctx,
		`select `+registrationColumns+` from event_registrations where user_id=$1 order by id`, userID)
}

func (s *registrationStore) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		select count(*) from event_registrations
		where event_id=$1 and status <> 'CANCELLED'
	`, eventID).Scan(&count)
	return count, err
}

func (s *registrationStore) list(ctx context.Context, query string, args ...any) ([]*content.EventRegistration, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*content.EventRegistration
	for rows.Next() {
		r, err := scanRegistrationFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *registrationStore) Update(ctx context.Context, r *content.EventRegistration) error {
	res, err := s.db.ExecContext(ctx, `
		update event_registrations
		set status=$2, payment_status=$3, payment_amount=$4, payment_reference=$5,
			special_requirements=$6, attendance_status=$7, feedback_rating=$8,
			feedback_comments=$9, certificate_issued=$10, updated_at=now()
		where id=$1
	`, r.ID, string(r.Status), string(r.PaymentStatus), r.PaymentAmount, r.PaymentReference,
		r.SpecialRequirements, string(r.AttendanceStatus), r.FeedbackRating, r.FeedbackComments,
		r.CertificateIssued)
	if err != nil {
		return err
	}
	return requireRow(res, content.ErrNotFound)
}

func scanRegistrationFrom(row rowScanner) (*content.EventRegistration, error) {
	var r content.EventRegistration
	var status, payment, attendance string
	err := row.Scan(&r.ID, &r.UserID, &r.EventID, &r.RegistrationDate, &status, &payment,
		&r.PaymentAmount, &r.PaymentReference, &r.SpecialRequirements, &attendance,
		&r.FeedbackRating, &r.FeedbackComments, &r.CertificateIssued, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, mapNotFound(err, content.ErrNotFound)
	}
	r.Status = content.RegistrationStatus(status)
	r.PaymentStatus = content.PaymentStatus(payment)
	r.AttendanceStatus = content.AttendanceStatus(attendance)
	return &r, nil
}

func scanRegistration(row *sql.Row) (*content.EventRegistration, error) {
	return scanRegistrationFrom(row)
}
