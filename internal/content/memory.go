package content

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemory is a Store backed by process memory. It exists for tests and for
// running the API without a database. All methods copy records on the way in
// and out so callers never share memory with the store.
type InMemory struct {
	mu sync.RWMutex

	nextID        int64
	societies     map[int64]*Society
	councils      map[int64]*Council
	pastEvents    map[int64]*PastEvent
	upcoming      map[int64]*UpcomingEvent
	achievements  map[int64]*Achievement
	gallery       map[int64]*GalleryItem
	notifications map[int64]*Notification
	heroSlides    map[int64]*HeroSlide
	registrations map[int64]*EventRegistration
}

// NewInMemory returns an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{
		nextID:        1,
		societies:     make(map[int64]*Society),
		councils:      make(map[int64]*Council),
		pastEvents:    make(map[int64]*PastEvent),
		upcoming:      make(map[int64]*UpcomingEvent),
		achievements:  make(map[int64]*Achievement),
		gallery:       make(map[int64]*GalleryItem),
		notifications: make(map[int64]*Notification),
		heroSlides:    make(map[int64]*HeroSlide),
		registrations: make(map[int64]*EventRegistration),
	}
}

func (m *InMemory) Societies() SocietyStore           { return (*memSocieties)(m) }
func (m *InMemory) Councils() CouncilStore            { return (*memCouncils)(m) }
func (m *InMemory) PastEvents() PastEventStore        { return (*memPastEvents)(m) }
func (m *InMemory) UpcomingEvents() UpcomingEventStore { return (*memUpcoming)(m) }
func (m *InMemory) Achievements() AchievementStore    { return (*memAchievements)(m) }
func (m *InMemory) Gallery() GalleryStore             { return (*memGallery)(m) }
func (m *InMemory) Notifications() NotificationStore  { return (*memNotifications)(m) }
func (m *InMemory) HeroSlides() HeroSlideStore        { return (*memHeroSlides)(m) }
func (m *InMemory) Registrations() RegistrationStore  { return (*memRegistrations)(m) }

func (m *InMemory) allocate() int64 {
	id := m.nextID
	m.nextID++
	return id
}

// Societies ----------------------------------------------------------------

type memSocieties InMemory

func (m *memSocieties) Create(_ context.Context, s *Society) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	m.societies[s.ID] = &cp
	return nil
}

func (m *memSocieties) Find(_ context.Context, id int64) (*Society, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.societies[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSocieties) FindByName(_ context.Context, name string) (*Society, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.societies {
		if strings.EqualFold(s.Name, name) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memSocieties) List(_ context.Context, activeOnly bool) ([]*Society, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Society, 0, len(m.societies))
	for _, s := range m.societies {
		if activeOnly && !s.Active {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSocieties) Update(_ context.Context, s *Society) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.societies[s.ID]
	if !ok {
		return ErrNotFound
	}
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	m.societies[s.ID] = &cp
	return nil
}

func (m *memSocieties) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.societies[id]; !ok {
		return ErrNotFound
	}
	delete(m.societies, id)
	return nil
}

// Councils -----------------------------------------------------------------

type memCouncils InMemory

func (m *memCouncils) Create(_ context.Context, c *Council) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	cp := *c
	m.councils[c.ID] = &cp
	return nil
}

func (m *memCouncils) Find(_ context.Context, id int64) (*Council, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.councils[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCouncils) FindByName(_ context.Context, name string) (*Council, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.councils {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memCouncils) List(_ context.Context, activeOnly bool) ([]*Council, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Council, 0, len(m.councils))
	for _, c := range m.councils {
		if activeOnly && !c.Active {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCouncils) Update(_ context.Context, c *Council) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.councils[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	m.councils[c.ID] = &cp
	return nil
}

func (m *memCouncils) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.councils[id]; !ok {
		return ErrNotFound
	}
	delete(m.councils, id)
	return nil
}

// Past events --------------------------------------------------------------

type memPastEvents InMemory

func (m *memPastEvents) Create(_ context.Context, e *PastEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	cp := *e
	m.pastEvents[e.ID] = &cp
	return nil
}

func (m *memPastEvents) Find(_ context.Context, id int64) (*PastEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.pastEvents[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memPastEvents) List(_ context.Context) ([]*PastEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*PastEvent, 0, len(m.pastEvents))
	for _, e := range m.pastEvents {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	return out, nil
}

func (m *memPastEvents) ListByOwner(_ context.Context, kind OwnerKind, ownerID int64) ([]*PastEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*PastEvent
	for _, e := range m.pastEvents {
		if !ownedBy(kind, ownerID, e.SocietyID, e.CouncilID) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	return out, nil
}

func (m *memPastEvents) Update(_ context.Context, e *PastEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.pastEvents[e.ID]
	if !ok {
		return ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	cp := *e
	m.pastEvents[e.ID] = &cp
	return nil
}

func (m *memPastEvents) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pastEvents[id]; !ok {
		return ErrNotFound
	}
	delete(m.pastEvents, id)
	return nil
}

// Upcoming events ----------------------------------------------------------

type memUpcoming InMemory

func (m *memUpcoming) Create(_ context.Context, e *UpcomingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	cp := *e
	m.upcoming[e.ID] = &cp
	return nil
}

func (m *memUpcoming) Find(_ context.Context, id int64) (*UpcomingEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.upcoming[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memUpcoming) List(_ context.Context) ([]*UpcomingEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*UpcomingEvent, 0, len(m.upcoming))
	for _, e := range m.upcoming {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (m *memUpcoming) ListByOwner(_ context.Context, kind OwnerKind, ownerID int64) ([]*UpcomingEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*UpcomingEvent
	for _, e := range m.upcoming {
		if !ownedBy(kind, ownerID, e.SocietyID, e.CouncilID) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (m *memUpcoming) Update(_ context.Context, e *UpcomingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.upcoming[e.ID]
	if !ok {
		return ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	cp := *e
	m.upcoming[e.ID] = &cp
	return nil
}

func (m *memUpcoming) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.upcoming[id]; !ok {
		return ErrNotFound
	}
	delete(m.upcoming, id)
	return nil
}

// Achievements -------------------------------------------------------------

type memAchievements InMemory

func (m *memAchievements) Create(_ context.Context, a *Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	cp := *a
	m.achievements[a.ID] = &cp
	return nil
}

func (m *memAchievements) Find(_ context.Context, id int64) (*Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.achievements[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAchievements) List(_ context.Context) ([]*Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Achievement, 0, len(m.achievements))
	for _, a := range m.achievements {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAchievements) ListByOwner(_ context.Context, kind OwnerKind, ownerID int64) ([]*Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Achievement
	for _, a := range m.achievements {
		if !ownedBy(kind, ownerID, a.SocietyID, a.CouncilID) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAchievements) ListFeatured(_ context.Context) ([]*Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Achievement
	for _, a := range m.achievements {
		if !a.Featured {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAchievements) Update(_ context.Context, a *Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.achievements[a.ID]
	if !ok {
		return ErrNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	m.achievements[a.ID] = &cp
	return nil
}

func (m *memAchievements) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.achievements[id]; !ok {
		return ErrNotFound
	}
	delete(m.achievements, id)
	return nil
}

// Gallery ------------------------------------------------------------------

type memGallery InMemory

func (m *memGallery) Create(_ context.Context, g *GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now
	cp := *g
	m.gallery[g.ID] = &cp
	return nil
}

func (m *memGallery) Find(_ context.Context, id int64) (*GalleryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.gallery[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memGallery) List(_ context.Context) ([]*GalleryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*GalleryItem, 0, len(m.gallery))
	for _, g := range m.gallery {
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	return out, nil
}

func (m *memGallery) ListByOwner(_ context.Context, kind OwnerKind, ownerID int64) ([]*GalleryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*GalleryItem
	for _, g := range m.gallery {
		if !ownedBy(kind, ownerID, g.SocietyID, g.CouncilID) {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	return out, nil
}

func (m *memGallery) ListByCategory(_ context.Context, category string) ([]*GalleryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*GalleryItem
	for _, g := range m.gallery {
		if !strings.EqualFold(g.Category, category) {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	return out, nil
}

func (m *memGallery) Update(_ context.Context, g *GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.gallery[g.ID]
	if !ok {
		return ErrNotFound
	}
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	cp := *g
	m.gallery[g.ID] = &cp
	return nil
}

func (m *memGallery) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gallery[id]; !ok {
		return ErrNotFound
	}
	delete(m.gallery, id)
	return nil
}

// Notifications ------------------------------------------------------------

type memNotifications InMemory

func (m *memNotifications) Create(_ context.Context, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *memNotifications) Find(_ context.Context, id int64) (*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *memNotifications) List(_ context.Context, unreadOnly bool) ([]*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Notification, 0, len(m.notifications))
	for _, n := range m.notifications {
		if unreadOnly && !n.Unread {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.Unread = false
	n.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memNotifications) Update(_ context.Context, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.notifications[n.ID]
	if !ok {
		return ErrNotFound
	}
	n.CreatedAt = existing.CreatedAt
	n.UpdatedAt = time.Now().UTC()
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *memNotifications) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notifications[id]; !ok {
		return ErrNotFound
	}
	delete(m.notifications, id)
	return nil
}

// Hero slides --------------------------------------------------------------

type memHeroSlides InMemory

func (m *memHeroSlides) Create(_ context.Context, h *HeroSlide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	h.CreatedAt, h.UpdatedAt = now, now
	cp := *h
	m.heroSlides[h.ID] = &cp
	return nil
}

func (m *memHeroSlides) Find(_ context.Context, id int64) (*HeroSlide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.heroSlides[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memHeroSlides) List(_ context.Context, activeOnly bool) ([]*HeroSlide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*HeroSlide, 0, len(m.heroSlides))
	for _, h := range m.heroSlides {
		if activeOnly && !h.Active {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memHeroSlides) Update(_ context.Context, h *HeroSlide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.heroSlides[h.ID]
	if !ok {
		return ErrNotFound
	}
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now().UTC()
	cp := *h
	m.heroSlides[h.ID] = &cp
	return nil
}

func (m *memHeroSlides) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.heroSlides[id]; !ok {
		return ErrNotFound
	}
	delete(m.heroSlides, id)
	return nil
}

// Registrations ------------------------------------------------------------

type memRegistrations InMemory

func (m *memRegistrations) Create(_ context.Context, r *EventRegistration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.registrations {
		if existing.UserID == r.UserID && existing.EventID == r.EventID && existing.Status != RegistrationCancelled {
			return ErrConflict
		}
	}
	r.ID = (*InMemory)(m).allocate()
	now := time.Now().UTC()
	r.CreatedAt, r.UpdatedAt = now, now
	cp := *r
	m.registrations[r.ID] = &cp
	return nil
}

func (m *memRegistrations) Find(_ context.Context, id int64) (*EventRegistration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.registrations[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRegistrations) ListByEvent(_ context.Context, eventID int64) ([]*EventRegistration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*EventRegistration
	for _, r := range m.registrations {
		if r.EventID != eventID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRegistrations) ListByUser(_ context.Context, userID int64) ([]*EventRegistration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*EventRegistration
	for _, r := range m.registrations {
		if r.UserID != userID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRegistrations) CountByEvent(_ context.Context, eventID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, r := range m.registrations {
		if r.EventID == eventID && r.Status != RegistrationCancelled {
			count++
		}
	}
	return count, nil
}

func (m *memRegistrations) Update(_ context.Context, r *EventRegistration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.registrations[r.ID]
	if !ok {
		return ErrNotFound
	}
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	m.registrations[r.ID] = &cp
	return nil
}
