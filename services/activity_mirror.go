package services

import (
	"context"

	"vibin_activity/models"
)

// ActivityMirror is a durable copy of the activity log. Writes are best
// effort; reads replace the in-memory query when a mirror is configured.
type ActivityMirror interface {
	PutActivity(ctx context.Context, event models.ActivityEvent) error
	ListActivity(ctx context.Context, targetID string, limit int) ([]models.ActivityEvent, error)
}

// ActivityNotifier is told about every recorded event, e.g. to push it to
// connected clients. It must not block.
type ActivityNotifier interface {
	NotifyActivity(event models.ActivityEvent)
}

type noopNotifier struct{}

func (noopNotifier) NotifyActivity(models.ActivityEvent) {}
