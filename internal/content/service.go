package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studenthub.org/internal/ids"
)

// Service validates and orchestrates content operations on top of a Store.
// Dashboard-scoped mutations always take the owning entity so a record can
// never be edited through the wrong family's dashboard.
type Service struct {
	store Store
	now   func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs the content service.
func NewService(store Store, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("content store is required")
	}
	svc := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func ownerRefs(kind OwnerKind, ownerID int64) (societyID, councilID *int64) {
	if kind == OwnerCouncil {
		return nil, &ownerID
	}
	return &ownerID, nil
}

// OwnedBy reports whether a record with the given owner references belongs to
// the entity.
func OwnedBy(kind OwnerKind, ownerID int64, societyID, councilID *int64) bool {
	if kind == OwnerCouncil {
		return councilID != nil && *councilID == ownerID
	}
	return societyID != nil && *societyID == ownerID
}

func ownedBy(kind OwnerKind, ownerID int64, societyID, councilID *int64) bool {
	return OwnedBy(kind, ownerID, societyID, councilID)
}

// Societies ----------------------------------------------------------------

func (s *Service) CreateSociety(ctx context.Context, soc *Society) (*Society, error) {
	soc.Name = strings.TrimSpace(soc.Name)
	if soc.Name == "" {
		return nil, fmt.Errorf("%w: society name is required", ErrInvalidInput)
	}
	if existing, err := s.store.Societies().FindByName(ctx, soc.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: society %q", ErrConflict, soc.Name)
	}
	soc.Active = true
	if err := s.store.Societies().Create(ctx, soc); err != nil {
		return nil, err
	}
	return soc, nil
}

func (s *Service) GetSociety(ctx context.Context, id int64) (*Society, error) {
	return s.store.Societies().Find(ctx, id)
}

func (s *Service) GetSocietyByName(ctx context.Context, name string) (*Society, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: society name is required", ErrInvalidInput)
	}
	return s.store.Societies().FindByName(ctx, name)
}

func (s *Service) ListSocieties(ctx context.Context, activeOnly bool) ([]*Society, error) {
	return s.store.Societies().List(ctx, activeOnly)
}

func (s *Service) UpdateSociety(ctx context.Context, id int64, upd *Society) (*Society, error) {
	existing, err := s.store.Societies().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	if strings.TrimSpace(upd.Name) == "" {
		upd.Name = existing.Name
	}
	if err := s.store.Societies().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *Service) DeactivateSociety(ctx context.Context, id int64) error {
	existing, err := s.store.Societies().Find(ctx, id)
	if err != nil {
		return err
	}
	existing.Active = false
	return s.store.Societies().Update(ctx, existing)
}

// Councils -----------------------------------------------------------------

func (s *Service) CreateCouncil(ctx context.Context, c *Council) (*Council, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: council name is required", ErrInvalidInput)
	}
	if existing, err := s.store.Councils().FindByName(ctx, c.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: council %q", ErrConflict, c.Name)
	}
	c.Active = true
	if err := s.store.Councils().Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCouncil(ctx context.Context, id int64) (*Council, error) {
	return s.store.Councils().Find(ctx, id)
}

func (s *Service) GetCouncilByName(ctx context.Context, name string) (*Council, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: council name is required", ErrInvalidInput)
	}
	return s.store.Councils().FindByName(ctx, name)
}

func (s *Service) ListCouncils(ctx context.Context, activeOnly bool) ([]*Council, error) {
	return s.store.Councils().List(ctx, activeOnly)
}

func (s *Service) UpdateCouncil(ctx context.Context, id int64, upd *Council) (*Council, error) {
	existing, err := s.store.Councils().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	if strings.TrimSpace(upd.Name) == "" {
		upd.Name = existing.Name
	}
	if err := s.store.Councils().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

// Past events --------------------------------------------------------------

func (s *Service) CreateOwnedPastEvent(ctx context.Context, kind OwnerKind, ownerID int64, e *PastEvent) (*PastEvent, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	e.SocietyID, e.CouncilID = ownerRefs(kind, ownerID)
	if err := s.store.PastEvents().Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListPastEvents(ctx context.Context) ([]*PastEvent, error) {
	return s.store.PastEvents().List(ctx)
}

func (s *Service) ListOwnedPastEvents(ctx context.Context, kind OwnerKind, ownerID int64) ([]*PastEvent, error) {
	return s.store.PastEvents().ListByOwner(ctx, kind, ownerID)
}

func (s *Service) UpdateOwnedPastEvent(ctx context.Context, kind OwnerKind, ownerID, id int64, upd *PastEvent) (*PastEvent, error) {
	existing, err := s.store.PastEvents().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	// Records reachable only through their own family's dashboard.
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return nil, ErrNotFound
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	upd.SocietyID, upd.CouncilID = existing.SocietyID, existing.CouncilID
	if strings.TrimSpace(upd.Title) == "" {
		upd.Title = existing.Title
	}
	if upd.EventDate.IsZero() {
		upd.EventDate = existing.EventDate
	}
	if err := s.store.PastEvents().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *Service) DeleteOwnedPastEvent(ctx context.Context, kind OwnerKind, ownerID, id int64) error {
	existing, err := s.store.PastEvents().Find(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return ErrNotFound
	}
	return s.store.PastEvents().Delete(ctx, id)
}

// Upcoming events ----------------------------------------------------------

func (s *Service) CreateOwnedUpcomingEvent(ctx context.Context, kind OwnerKind, ownerID int64, e *UpcomingEvent) (*UpcomingEvent, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if e.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}
	e.SocietyID, e.CouncilID = ownerRefs(kind, ownerID)
	if err := s.store.UpcomingEvents().Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetUpcomingEvent(ctx context.Context, id int64) (*UpcomingEvent, error) {
	return s.store.UpcomingEvents().Find(ctx, id)
}

func (s *Service) ListUpcomingEvents(ctx context.Context) ([]*UpcomingEvent, error) {
	return s.store.UpcomingEvents().List(ctx)
}

func (s *Service) ListOwnedUpcomingEvents(ctx context.Context, kind OwnerKind, ownerID int64) ([]*UpcomingEvent, error) {
	return s.store.UpcomingEvents().ListByOwner(ctx, kind, ownerID)
}

func (s *Service) UpdateOwnedUpcomingEvent(ctx context.Context, kind OwnerKind, ownerID, id int64, upd *UpcomingEvent) (*UpcomingEvent, error) {
	existing, err := s.store.UpcomingEvents().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return nil, ErrNotFound
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	upd.SocietyID, upd.CouncilID = existing.SocietyID, existing.CouncilID
	if strings.TrimSpace(upd.Title) == "" {
		upd.Title = existing.Title
	}
	if upd.EventDate.IsZero() {
		upd.EventDate = existing.EventDate
	}
	if err := s.store.UpcomingEvents().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *Service) DeleteOwnedUpcomingEvent(ctx context.Context, kind OwnerKind, ownerID, id int64) error {
	existing, err := s.store.UpcomingEvents().Find(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return ErrNotFound
	}
	return s.store.UpcomingEvents().Delete(ctx, id)
}

// RegisterForEvent creates a registration for an open upcoming event. The
// payment reference is minted here so retries from the client never produce
// two references for one registration row.
func (s *Service) RegisterForEvent(ctx context.Context, userID, eventID int64, specialRequirements string) (*EventRegistration, error) {
	event, err := s.store.UpcomingEvents().Find(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.RegistrationOpen {
		return nil, fmt.Errorf("%w: registration closed", ErrInvalidInput)
	}
	now := s.now().UTC()
	if event.RegistrationDeadline != nil && now.After(*event.RegistrationDeadline) {
		return nil, fmt.Errorf("%w: registration deadline passed", ErrInvalidInput)
	}
	if event.MaxParticipants > 0 {
		count, err := s.store.Registrations().CountByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= event.MaxParticipants {
			return nil, fmt.Errorf("%w: event is full", ErrConflict)
		}
	}

	reg := &EventRegistration{
		UserID:              userID,
		EventID:             eventID,
		RegistrationDate:    now,
		Status:              RegistrationPending,
		PaymentStatus:       PaymentPending,
		PaymentAmount:       event.RegistrationFee,
		SpecialRequirements: strings.TrimSpace(specialRequirements),
		AttendanceStatus:    AttendanceRegistered,
	}
	if event.RegistrationFee == 0 {
		reg.PaymentStatus = PaymentWaived
	} else {
		reg.PaymentReference = ids.New()
	}
	if err := s.store.Registrations().Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) ListEventRegistrations(ctx context.Context, eventID int64) ([]*EventRegistration, error) {
	return s.store.Registrations().ListByEvent(ctx, eventID)
}

// Achievements -------------------------------------------------------------

func (s *Service) CreateOwnedAchievement(ctx context.Context, kind OwnerKind, ownerID int64, a *Achievement) (*Achievement, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return nil, fmt.Errorf("%w: achievement title is required", ErrInvalidInput)
	}
	a.SocietyID, a.CouncilID = ownerRefs(kind, ownerID)
	if err := s.store.Achievements().Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAchievements(ctx context.Context) ([]*Achievement, error) {
	return s.store.Achievements().List(ctx)
}

func (s *Service) ListFeaturedAchievements(ctx context.Context) ([]*Achievement, error) {
	return s.store.Achievements().ListFeatured(ctx)
}

func (s *Service) ListOwnedAchievements(ctx context.Context, kind OwnerKind, ownerID int64) ([]*Achievement, error) {
	return s.store.Achievements().ListByOwner(ctx, kind, ownerID)
}

func (s *Service) UpdateOwnedAchievement(ctx context.Context, kind OwnerKind, ownerID, id int64, upd *Achievement) (*Achievement, error) {
	existing, err := s.store.Achievements().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return nil, ErrNotFound
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	upd.SocietyID, upd.CouncilID = existing.SocietyID, existing.CouncilID
	if strings.TrimSpace(upd.Title) == "" {
		upd.Title = existing.Title
	}
	if err := s.store.Achievements().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *Service) DeleteOwnedAchievement(ctx context.Context, kind OwnerKind, ownerID, id int64) error {
	existing, err := s.store.Achievements().Find(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return ErrNotFound
	}
	return s.store.Achievements().Delete(ctx, id)
}

// Gallery ------------------------------------------------------------------

func (s *Service) CreateOwnedGalleryItem(ctx context.Context, kind OwnerKind, ownerID int64, g *GalleryItem) (*GalleryItem, error) {
	if strings.TrimSpace(g.Image) == "" {
		return nil, fmt.Errorf("%w: gallery image is required", ErrInvalidInput)
	}
	g.SocietyID, g.CouncilID = ownerRefs(kind, ownerID)
	if g.UploadDate.IsZero() {
		g.UploadDate = s.now().UTC()
	}
	if err := s.store.Gallery().Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGallery(ctx context.Context) ([]*GalleryItem, error) {
	return s.store.Gallery().List(ctx)
}

func (s *Service) ListGalleryByCategory(ctx context.Context, category string) ([]*GalleryItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return s.store.Gallery().ListByCategory(ctx, category)
}

func (s *Service) ListOwnedGallery(ctx context.Context, kind OwnerKind, ownerID int64) ([]*GalleryItem, error) {
	return s.store.Gallery().ListByOwner(ctx, kind, ownerID)
}

func (s *Service) DeleteOwnedGalleryItem(ctx context.Context, kind OwnerKind, ownerID, id int64) error {
	existing, err := s.store.Gallery().Find(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(kind, ownerID, existing.SocietyID, existing.CouncilID) {
		return ErrNotFound
	}
	return s.store.Gallery().Delete(ctx, id)
}

// Notifications ------------------------------------------------------------

func (s *Service) PublishNotification(ctx context.Context, n *Notification) (*Notification, error) {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	if n.Title == "" || n.Message == "" {
		return nil, fmt.Errorf("%w: notification title and message are required", ErrInvalidInput)
	}
	if n.Time.IsZero() {
		n.Time = s.now().UTC()
	}
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	n.Unread = true
	if err := s.store.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListNotifications(ctx context.Context, unreadOnly bool) ([]*Notification, error) {
	return s.store.Notifications().List(ctx, unreadOnly)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id int64) error {
	return s.store.Notifications().MarkRead(ctx, id)
}

// Hero slides --------------------------------------------------------------

func (s *Service) CreateHeroSlide(ctx context.Context, h *HeroSlide) (*HeroSlide, error) {
	h.Title = strings.TrimSpace(h.Title)
	if h.Title == "" {
		return nil, fmt.Errorf("%w: slide title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(h.Image) == "" {
		return nil, fmt.Errorf("%w: slide image is required", ErrInvalidInput)
	}
	h.Active = true
	if err := s.store.HeroSlides().Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHeroSlides(ctx context.Context, activeOnly bool) ([]*HeroSlide, error) {
	return s.store.HeroSlides().List(ctx, activeOnly)
}

func (s *Service) UpdateHeroSlide(ctx context.Context, id int64, upd *HeroSlide) (*HeroSlide, error) {
	existing, err := s.store.HeroSlides().Find(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ID = existing.ID
	upd.CreatedAt = existing.CreatedAt
	if strings.TrimSpace(upd.Title) == "" {
		upd.Title = existing.Title
	}
	if strings.TrimSpace(upd.Image) == "" {
		upd.Image = existing.Image
	}
	if err := s.store.HeroSlides().Update(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id int64) error {
	return s.store.HeroSlides().Delete(ctx, id)
}
