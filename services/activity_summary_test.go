package services

import (
	"testing"
	"time"

	"vibin_activity/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeActivity(t *testing.T) {
	at := func(kind models.ActivityKind, age time.Duration) models.ActivityEvent {
		return models.ActivityEvent{Type: kind, Timestamp: epoch.Add(-age)}
	}

	tests := []struct {
		name   string
		events []models.ActivityEvent
		want   models.ActivitySummary
	}{
		{
			name: "empty",
			want: models.ActivitySummary{},
		},
		{
			name: "mixed kinds and ages",
			events: []models.ActivityEvent{
				at(models.ActivityProfileView, time.Hour),
				at(models.ActivityProfileView, 48*time.Hour),
				at(models.ActivityLike, time.Minute),
				at(models.ActivitySuperLike, 30*time.Hour),
				at(models.ActivityLike, 24*time.Hour),
				at(models.ActivityMatch, time.Hour),
				at(models.ActivityStoryView, time.Hour),
				at(models.ActivityStoryView, 72*time.Hour),
				at(models.ActivityStoryReaction, time.Hour),
			},
			want: models.ActivitySummary{
				TotalViews:     2,
				TotalLikes:     3,
				RecentViews:    1,
				RecentLikes:    2,
				StoryViews:     2,
				StoryReactions: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeActivity(tt.events, epoch)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.RecentViews, got.TotalViews)
			assert.LessOrEqual(t, got.RecentLikes, got.TotalLikes)
		})
	}
}
