package content

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newFixture(t *testing.T, opts ...ServiceOption) (*Service, *InMemory) {
	t.Helper()
	store := NewInMemory()
	svc, err := NewService(store, opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, store
}

func TestCreateSocietyValidatesAndDeduplicates(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateSociety(ctx, &Society{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	soc, err := svc.CreateSociety(ctx, &Society{Name: "Robotics Society"})
	if err != nil {
		t.Fatalf("CreateSociety: %v", err)
	}
	if soc.ID == 0 || !soc.Active {
		t.Fatalf("society not initialized: %+v", soc)
	}

	// Name dedup is case-insensitive.
	if _, err := svc.CreateSociety(ctx, &Society{Name: "robotics society"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetSocietyByNameIsCaseInsensitive(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()
	if _, err := svc.CreateSociety(ctx, &Society{Name: "Debate Club"}); err != nil {
		t.Fatalf("CreateSociety: %v", err)
	}
	found, err := svc.GetSocietyByName(ctx, "DEBATE CLUB")
	if err != nil {
		t.Fatalf("GetSocietyByName: %v", err)
	}
	if found.Name != "Debate Club" {
		t.Fatalf("unexpected match: %+v", found)
	}
}

func TestDeactivateSocietyHidesFromActiveList(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()
	soc, err := svc.CreateSociety(ctx, &Society{Name: "Chess Society"})
	if err != nil {
		t.Fatalf("CreateSociety: %v", err)
	}
	if err := svc.DeactivateSociety(ctx, soc.ID); err != nil {
		t.Fatalf("DeactivateSociety: %v", err)
	}
	active, err := svc.ListSocieties(ctx, true)
	if err != nil {
		t.Fatalf("ListSocieties: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated society still listed: %d", len(active))
	}
	all, err := svc.ListSocieties(ctx, false)
	if err != nil {
		t.Fatalf("ListSocieties: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("society disappeared entirely: %d", len(all))
	}
}

func TestOwnedPastEventScopedToFamily(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	event, err := svc.CreateOwnedPastEvent(ctx, OwnerSociety, 3, &PastEvent{
		Title:     "Annual Tech Fest",
		EventDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateOwnedPastEvent: %v", err)
	}
	if event.SocietyID == nil || *event.SocietyID != 3 || event.CouncilID != nil {
		t.Fatalf("owner refs wrong: %+v", event)
	}

	// The council family cannot see or touch a society-owned record.
	if _, err := svc.UpdateOwnedPastEvent(ctx, OwnerCouncil, 3, event.ID, &PastEvent{Title: "Hijacked"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-family update allowed: %v", err)
	}
	if err := svc.DeleteOwnedPastEvent(ctx, OwnerSociety, 9, event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong-owner delete allowed: %v", err)
	}

	listed, err := svc.ListOwnedPastEvents(ctx, OwnerSociety, 3)
	if err != nil {
		t.Fatalf("ListOwnedPastEvents: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one event, got %d", len(listed))
	}

	updated, err := svc.UpdateOwnedPastEvent(ctx, OwnerSociety, 3, event.ID, &PastEvent{Title: "Annual Tech Fest 2025"})
	if err != nil {
		t.Fatalf("UpdateOwnedPastEvent: %v", err)
	}
	if updated.Title != "Annual Tech Fest 2025" {
		t.Fatalf("update lost: %+v", updated)
	}
	if updated.SocietyID == nil || *updated.SocietyID != 3 {
		t.Fatalf("ownership changed on update: %+v", updated)
	}
}

func TestRegisterForEventLifecycle(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newFixture(t, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	deadline := fixed.Add(24 * time.Hour)
	event, err := svc.CreateOwnedUpcomingEvent(ctx, OwnerCouncil, 5, &UpcomingEvent{
		Title:                "Leadership Summit",
		EventDate:            fixed.Add(72 * time.Hour),
		RegistrationOpen:     true,
		RegistrationDeadline: &deadline,
		MaxParticipants:      2,
		RegistrationFee:      150,
	})
	if err != nil {
		t.Fatalf("CreateOwnedUpcomingEvent: %v", err)
	}

	reg, err := svc.RegisterForEvent(ctx, 11, event.ID, "wheelchair access")
	if err != nil {
		t.Fatalf("RegisterForEvent: %v", err)
	}
	if reg.Status != RegistrationPending || reg.PaymentStatus != PaymentPending {
		t.Fatalf("unexpected statuses: %+v", reg)
	}
	if reg.PaymentReference == "" {
		t.Fatalf("paid event missing payment reference")
	}
	if reg.PaymentAmount != 150 {
		t.Fatalf("fee not copied: %v", reg.PaymentAmount)
	}

	// Duplicate registration for the same user is rejected.
	if _, err := svc.RegisterForEvent(ctx, 11, event.ID, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate, got %v", err)
	}

	if _, err := svc.RegisterForEvent(ctx, 12, event.ID, ""); err != nil {
		t.Fatalf("second registrant rejected: %v", err)
	}
	// Capacity of 2 reached.
	if _, err := svc.RegisterForEvent(ctx, 13, event.ID, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected full event, got %v", err)
	}
}

func TestRegisterForEventClosedAndExpired(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newFixture(t, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	closed, err := svc.CreateOwnedUpcomingEvent(ctx, OwnerSociety, 1, &UpcomingEvent{
		Title:            "Closed Workshop",
		EventDate:        fixed.Add(48 * time.Hour),
		RegistrationOpen: false,
	})
	if err != nil {
		t.Fatalf("CreateOwnedUpcomingEvent: %v", err)
	}
	if _, err := svc.RegisterForEvent(ctx, 1, closed.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected closed registration error, got %v", err)
	}

	past := fixed.Add(-time.Hour)
	expired, err := svc.CreateOwnedUpcomingEvent(ctx, OwnerSociety, 1, &UpcomingEvent{
		Title:                "Late Workshop",
		EventDate:            fixed.Add(48 * time.Hour),
		RegistrationOpen:     true,
		RegistrationDeadline: &past,
	})
	if err != nil {
		t.Fatalf("CreateOwnedUpcomingEvent: %v", err)
	}
	if _, err := svc.RegisterForEvent(ctx, 1, expired.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestRegisterForFreeEventWaivesPayment(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()
	event, err := svc.CreateOwnedUpcomingEvent(ctx, OwnerSociety, 2, &UpcomingEvent{
		Title:            "Free Seminar",
		EventDate:        time.Now().UTC().Add(24 * time.Hour),
		RegistrationOpen: true,
	})
	if err != nil {
		t.Fatalf("CreateOwnedUpcomingEvent: %v", err)
	}
	reg, err := svc.RegisterForEvent(ctx, 7, event.ID, "")
	if err != nil {
		t.Fatalf("RegisterForEvent: %v", err)
	}
	if reg.PaymentStatus != PaymentWaived {
		t.Fatalf("free event not waived: %s", reg.PaymentStatus)
	}
	if reg.PaymentReference != "" {
		t.Fatalf("free event minted a payment reference")
	}
}

func TestPublishNotificationDefaults(t *testing.T) {
	fixed := time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC)
	svc, _ := newFixture(t, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	if _, err := svc.PublishNotification(ctx, &Notification{Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty message, got %v", err)
	}

	n, err := svc.PublishNotification(ctx, &Notification{Title: "Exam Schedule", Message: "Published today"})
	if err != nil {
		t.Fatalf("PublishNotification: %v", err)
	}
	if !n.Time.Equal(fixed) {
		t.Fatalf("time not defaulted: %v", n.Time)
	}
	if n.Priority != PriorityMedium || !n.Unread {
		t.Fatalf("defaults wrong: %+v", n)
	}

	unread, err := svc.ListNotifications(ctx, true)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected one unread, got %d", len(unread))
	}
	if err := svc.MarkNotificationRead(ctx, n.ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	unread, err = svc.ListNotifications(ctx, true)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("notification still unread after mark")
	}
}

func TestHeroSlidesOrderedByDisplayOrder(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateHeroSlide(ctx, &HeroSlide{Title: "No image"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	for i, title := range []string{"Third", "First", "Second"} {
		order := []int{3, 1, 2}[i]
		if _, err := svc.CreateHeroSlide(ctx, &HeroSlide{Title: title, Image: "img.png", DisplayOrder: order}); err != nil {
			t.Fatalf("CreateHeroSlide %s: %v", title, err)
		}
	}
	slides, err := svc.ListHeroSlides(ctx, true)
	if err != nil {
		t.Fatalf("ListHeroSlides: %v", err)
	}
	got := make([]string, 0, len(slides))
	for _, s := range slides {
		got = append(got, s.Title)
	}
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order wrong: %v", got)
		}
	}
}

func TestGalleryCategoryFilter(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateOwnedGalleryItem(ctx, OwnerSociety, 1, &GalleryItem{Image: "a.jpg", Category: "Events"}); err != nil {
		t.Fatalf("CreateOwnedGalleryItem: %v", err)
	}
	if _, err := svc.CreateOwnedGalleryItem(ctx, OwnerSociety, 1, &GalleryItem{Image: "b.jpg", Category: "Workshops"}); err != nil {
		t.Fatalf("CreateOwnedGalleryItem: %v", err)
	}

	events, err := svc.ListGalleryByCategory(ctx, "events")
	if err != nil {
		t.Fatalf("ListGalleryByCategory: %v", err)
	}
	if len(events) != 1 || events[0].Image != "a.jpg" {
		t.Fatalf("category filter wrong: %+v", events)
	}
}

func TestFeaturedAchievements(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateOwnedAchievement(ctx, OwnerCouncil, 4, &Achievement{Title: "Best Chapter", Featured: true}); err != nil {
		t.Fatalf("CreateOwnedAchievement: %v", err)
	}
	if _, err := svc.CreateOwnedAchievement(ctx, OwnerCouncil, 4, &Achievement{Title: "Runner Up"}); err != nil {
		t.Fatalf("CreateOwnedAchievement: %v", err)
	}

	featured, err := svc.ListFeaturedAchievements(ctx)
	if err != nil {
		t.Fatalf("ListFeaturedAchievements: %v", err)
	}
	if len(featured) != 1 || featured[0].Title != "Best Chapter" {
		t.Fatalf("featured filter wrong: %+v", featured)
	}
}
