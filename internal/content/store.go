package content

import "context"

// Store describes persistence operations for portal content. Implementations
// exist in-memory (memory.go) and on PostgreSQL (internal/store/pg).
type Store interface {
	Societies() SocietyStore
	Councils() CouncilStore
	PastEvents() PastEventStore
	UpcomingEvents() UpcomingEventStore
	Achievements() AchievementStore
	Gallery() GalleryStore
	Notifications() NotificationStore
	HeroSlides() HeroSlideStore
	Registrations() RegistrationStore
}

// SocietyStore manages societies. Name search is case-insensitive, unlike
// account email lookups in the auth layer.
type SocietyStore interface {
	Create(ctx context.Context, s *Society) error
	Find(ctx context.Context, id int64) (*Society, error)
	FindByName(ctx context.Context, name string) (*Society, error)
	List(ctx context.Context, activeOnly bool) ([]*Society, error)
	Update(ctx context.Context, s *Society) error
	Delete(ctx context.Context, id int64) error
}

// CouncilStore manages councils.
type CouncilStore interface {
	Create(ctx context.Context, c *Council) error
	Find(ctx context.Context, id int64) (*Council, error)
	FindByName(ctx context.Context, name string) (*Council, error)
	List(ctx context.Context, activeOnly bool) ([]*Council, error)
	Update(ctx context.Context, c *Council) error
	Delete(ctx context.Context, id int64) error
}

// PastEventStore manages the event archive.
type PastEventStore interface {
	Create(ctx context.Context, e *PastEvent) error
	Find(ctx context.Context, id int64) (*PastEvent, error)
	List(ctx context.Context) ([]*PastEvent, error)
	ListByOwner(ctx context.Context, kind OwnerKind, ownerID int64) ([]*PastEvent, error)
	Update(ctx context.Context, e *PastEvent) error
	Delete(ctx context.Context, id int64) error
}

// UpcomingEventStore manages scheduled events.
type UpcomingEventStore interface {
	Create(ctx context.Context, e *UpcomingEvent) error
	Find(ctx context.Context, id int64) (*UpcomingEvent, error)
	List(ctx context.Context) ([]*UpcomingEvent, error)
	ListByOwner(ctx context.Context, kind OwnerKind, ownerID int64) ([]*UpcomingEvent, error)
	Update(ctx context.Context, e *UpcomingEvent) error
	Delete(ctx context.Context, id int64) error
}

// AchievementStore manages awards.
type AchievementStore interface {
	Create(ctx context.Context, a *Achievement) error
	Find(ctx context.Context, id int64) (*Achievement, error)
	List(ctx context.Context) ([]*Achievement, error)
	ListByOwner(ctx context.Context, kind OwnerKind, ownerID int64) ([]*Achievement, error)
	ListFeatured(ctx context.Context) ([]*Achievement, error)
	Update(ctx context.Context, a *Achievement) error
	Delete(ctx context.Context, id int64) error
}

// GalleryStore manages gallery media.
type GalleryStore interface {
	Create(ctx context.Context, g *GalleryItem) error
	Find(ctx context.Context, id int64) (*GalleryItem, error)
	List(ctx context.Context) ([]*GalleryItem, error)
	ListByOwner(ctx context.Context, kind OwnerKind, ownerID int64) ([]*GalleryItem, error)
	ListByCategory(ctx context.Context, category string) ([]*GalleryItem, error)
	Update(ctx context.Context, g *GalleryItem) error
	Delete(ctx context.Context, id int64) error
}

// NotificationStore manages the notification feed.
type NotificationStore interface {
	Create(ctx context.Context, n *Notification) error
	Find(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id int64) error
}

// HeroSlideStore manages landing banners, ordered by display order.
type HeroSlideStore interface {
	Create(ctx context.Context, h *HeroSlide) error
	Find(ctx context.Context, id int64) (*HeroSlide, error)
	List(ctx context.Context, activeOnly bool) ([]*HeroSlide, error)
	Update(ctx context.Context, h *HeroSlide) error
	Delete(ctx context.Context, id int64) error
}

// RegistrationStore manages event registrations.
type RegistrationStore interface {
	Create(ctx context.Context, r *EventRegistration) error
	Find(ctx context.Context, id int64) (*EventRegistration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*EventRegistration, error)
	ListByUser(ctx context.Context, userID int64) ([]*EventRegistration, error)
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	Update(ctx context.Context, r *EventRegistration) error
}
