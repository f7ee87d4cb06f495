package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vibin_activity/models"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeClock is a settable clock for recency tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// seqIDs returns an id generator yielding evt-1, evt-2, ...
func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("evt-%d", n)
	}
}

// fakeMirror implements ActivityMirror for testing.
type fakeMirror struct {
	mu      sync.Mutex
	puts    []models.ActivityEvent
	putErr  error
	list    []models.ActivityEvent
	listErr error
	block   bool // wait for ctx to expire before answering
}

func (m *fakeMirror) PutActivity(ctx context.Context, event models.ActivityEvent) error {
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts = append(m.puts, event)
	return m.putErr
}

func (m *fakeMirror) ListActivity(ctx context.Context, _ string, _ int) ([]models.ActivityEvent, error) {
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.list, m.listErr
}

func (m *fakeMirror) Puts() []models.ActivityEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ActivityEvent(nil), m.puts...)
}

// recordingNotifier implements ActivityNotifier for testing.
type recordingNotifier struct {
	mu     sync.Mutex
	events []models.ActivityEvent
}

func (n *recordingNotifier) NotifyActivity(event models.ActivityEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func newTestFeed(clock *fakeClock, retention int) *ActivityFeedService {
	return NewActivityFeedService(ActivityFeedConfig{
		Retention: retention,
		Now:       clock.Now,
		NewID:     seqIDs(),
	})
}

func view(actor, target string) models.NewActivityEvent {
	return models.NewActivityEvent{Type: models.ActivityProfileView, ActorID: actor, ActorName: actor, TargetID: target}
}

func like(actor, target string) models.NewActivityEvent {
	return models.NewActivityEvent{Type: models.ActivityLike, ActorID: actor, ActorName: actor, TargetID: target}
}
