package services

import (
	"context"
	"maps"
	"sync"
	"time"

	"vibin_activity/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ActivityFeedConfig configures an ActivityFeedService. Zero values pick the defaults.
type ActivityFeedConfig struct {
	// Retention caps how many events the in-memory log keeps.
	Retention int
	// Mirror, when set, receives a copy of every event and serves reads.
	Mirror ActivityMirror
	// MirrorTimeout bounds every mirror call.
	MirrorTimeout time.Duration
	Notifier      ActivityNotifier
	Now           func() time.Time
	NewID         func() string
}

// ActivityFeedService owns the bounded activity log and answers feed queries.
type ActivityFeedService struct {
	log      *activityLog
	reader   activityReader
	mirror   ActivityMirror
	notifier ActivityNotifier
	timeout  time.Duration
	now      func() time.Time
	newID    func() string

	// writeMirror is chosen once at construction: async put or no-op.
	writeMirror func(ctx context.Context, event models.ActivityEvent)
	pending     sync.WaitGroup
}

// NewActivityFeedService builds a feed service; the mirror and notifier
// strategies are fixed here and never re-checked per call.
func NewActivityFeedService(cfg ActivityFeedConfig) *ActivityFeedService {
	if cfg.Retention <= 0 {
		cfg.Retention = models.DefaultRetention
	}
	if cfg.MirrorTimeout <= 0 {
		cfg.MirrorTimeout = 2 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Notifier == nil {
		cfg.Notifier = noopNotifier{}
	}

	s := &ActivityFeedService{
		log:      newActivityLog(cfg.Retention),
		notifier: cfg.Notifier,
		timeout:  cfg.MirrorTimeout,
		now:      cfg.Now,
		newID:    cfg.NewID,
	}

	if cfg.Mirror == nil {
		s.reader = s.log
		s.writeMirror = func(context.Context, models.ActivityEvent) {}
	} else {
		s.mirror = cfg.Mirror
		s.reader = &mirrorReader{mirror: cfg.Mirror, timeout: cfg.MirrorTimeout}
		s.writeMirror = s.mirrorAsync
	}

	return s
}

// Record stores a new event as the most recent one and evicts the oldest
// events past the retention cap. It never fails; mirror errors are logged.
func (s *ActivityFeedService) Record(ctx context.Context, in models.NewActivityEvent) models.ActivityEvent {
	event := models.ActivityEvent{
		ID:         s.newID(),
		Type:       in.Type,
		ActorID:    in.ActorID,
		ActorName:  in.ActorName,
		ActorPhoto: in.ActorPhoto,
		TargetID:   in.TargetID,
		Timestamp:  s.now().UTC(),
		Metadata:   maps.Clone(in.Metadata),
	}

	size := s.log.push(&event)
	activityLogSize.Set(float64(size))
	activityEventsRecorded.WithLabelValues(string(event.Type)).Inc()

	log.Debug().
		Str("id", event.ID).
		Str("type", string(event.Type)).
		Str("actorId", event.ActorID).
		Str("targetId", event.TargetID).
		Msg("📝 Activity recorded")

	s.writeMirror(ctx, event.Clone())
	s.notifier.NotifyActivity(event.Clone())

	return event.Clone()
}

func (s *ActivityFeedService) mirrorAsync(ctx context.Context, event models.ActivityEvent) {
	// The request context may end before the write does.
	ctx = context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		if err := s.mirror.PutActivity(ctx, event); err != nil {
			activityMirrorFailures.WithLabelValues("put").Inc()
			log.Error().Err(err).Str("id", event.ID).Msg("❌ Failed to mirror activity event")
		}
	}()
}

// Wait blocks until every in-flight mirror write has finished.
func (s *ActivityFeedService) Wait() {
	s.pending.Wait()
}

// Len returns the number of events currently retained in memory.
func (s *ActivityFeedService) Len() int {
	return s.log.len()
}

// Events returns every event retained in memory, newest first.
func (s *ActivityFeedService) Events() []models.ActivityEvent {
	return s.log.snapshot()
}

// GetUserActivity returns events targeting targetID, newest first, at most
// limit of them. A non-positive limit means DefaultActivityLimit.
func (s *ActivityFeedService) GetUserActivity(ctx context.Context, targetID string, limit int) []models.ActivityEvent {
	if limit <= 0 {
		limit = models.DefaultActivityLimit
	}
	return s.reader.userActivity(ctx, targetID, limit)
}

// RetainedActivity returns events targeting targetID from the in-memory log,
// newest first, even when a mirror serves reads. A non-positive limit means
// every retained event.
func (s *ActivityFeedService) RetainedActivity(targetID string, limit int) []models.ActivityEvent {
	if limit <= 0 {
		limit = s.log.capacity()
	}
	return s.log.userActivity(context.Background(), targetID, limit)
}

// GetRecentProfileViews returns recent profile_view events for targetID.
func (s *ActivityFeedService) GetRecentProfileViews(ctx context.Context, targetID string) []models.ActivityEvent {
	now := s.now()
	return filterEvents(s.GetUserActivity(ctx, targetID, models.RecentScanLimit), func(e models.ActivityEvent) bool {
		return e.Type == models.ActivityProfileView && e.IsRecent(now)
	})
}

// GetRecentLikes returns recent like and super_like events for targetID.
func (s *ActivityFeedService) GetRecentLikes(ctx context.Context, targetID string) []models.ActivityEvent {
	now := s.now()
	return filterEvents(s.GetUserActivity(ctx, targetID, models.RecentScanLimit), func(e models.ActivityEvent) bool {
		return e.Type.IsLike() && e.IsRecent(now)
	})
}

// GetActivitySummary aggregates events using the service clock.
func (s *ActivityFeedService) GetActivitySummary(events []models.ActivityEvent) models.ActivitySummary {
	return SummarizeActivity(events, s.now())
}

func filterEvents(events []models.ActivityEvent, keep func(models.ActivityEvent) bool) []models.ActivityEvent {
	out := make([]models.ActivityEvent, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

type activityReader interface {
	userActivity(ctx context.Context, targetID string, limit int) []models.ActivityEvent
}

// mirrorReader serves reads from the durable mirror, degrading to empty.
type mirrorReader struct {
	mirror  ActivityMirror
	timeout time.Duration
}

func (r *mirrorReader) userActivity(ctx context.Context, targetID string, limit int) []models.ActivityEvent {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	events, err := r.mirror.ListActivity(ctx, targetID, limit)
	if err != nil {
		activityMirrorFailures.WithLabelValues("list").Inc()
		log.Error().Err(err).Str("targetId", targetID).Msg("❌ Failed to read activity from mirror")
		return []models.ActivityEvent{}
	}
	if len(events) > limit {
		events = events[:limit]
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	return events
}

// activityLog is a fixed-capacity ring of events. Once full, each push
// overwrites the oldest slot.
type activityLog struct {
	mu   sync.RWMutex
	buf  []models.ActivityEvent
	next int
	size int
	seq  uint64
}

func newActivityLog(capacity int) *activityLog {
	return &activityLog{buf: make([]models.ActivityEvent, capacity)}
}

// push stamps e with the next sequence number, appends it as the newest
// event and returns the retained count.
func (l *activityLog) push(e *models.ActivityEvent) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	e.Seq = l.seq
	l.buf[l.next] = *e
	l.next = (l.next + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
	return l.size
}

func (l *activityLog) capacity() int {
	return len(l.buf)
}

func (l *activityLog) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

// newestFirst visits events from newest to oldest until fn returns false.
// Callers must hold at least the read lock.
func (l *activityLog) newestFirst(fn func(models.ActivityEvent) bool) {
	n := len(l.buf)
	for i := 0; i < l.size; i++ {
		if !fn(l.buf[(l.next-1-i+n)%n]) {
			return
		}
	}
}

func (l *activityLog) userActivity(_ context.Context, targetID string, limit int) []models.ActivityEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.ActivityEvent{}
	l.newestFirst(func(e models.ActivityEvent) bool {
		if e.TargetID == targetID {
			out = append(out, e.Clone())
		}
		return len(out) < limit
	})
	return out
}

// snapshot returns every retained event, newest first.
func (l *activityLog) snapshot() []models.ActivityEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.ActivityEvent, 0, l.size)
	l.newestFirst(func(e models.ActivityEvent) bool {
		out = append(out, e.Clone())
		return true
	})
	return out
}
