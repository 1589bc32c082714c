package stream

import (
	"context"
	"testing"
	"time"

	"studenthub.org/internal/content"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := s.Subscribe(ctx)
	b := s.Subscribe(ctx)
	if got := s.Subscribers(); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}

	n := &content.Notification{ID: 7, Title: "Results Out", Message: "Check the portal"}
	s.Publish(n)

	for name, ch := range map[string]<-chan *content.Notification{"a": a, "b": b} {
		select {
		case got := <-ch:
			if got.ID != 7 {
				t.Fatalf("subscriber %s got wrong notification: %+v", name, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s never received the notification", name)
		}
	}
}

func TestSubscribeClosesOnContextCancel(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Subscribe(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}

	// Publishing after the subscriber left must not panic or block.
	deadline := time.Now().Add(time.Second)
	for s.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never removed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	s.Publish(&content.Notification{ID: 1, Title: "x", Message: "y"})
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = s.Subscribe(ctx) // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.Publish(&content.Notification{ID: int64(i), Title: "t", Message: "m"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
}
