package services

import (
	"time"

	"vibin_activity/models"
)

// SummarizeActivity counts events by kind; the recent counters only include
// events inside the recency window at now.
func SummarizeActivity(events []models.ActivityEvent, now time.Time) models.ActivitySummary {
	var sum models.ActivitySummary
	for _, e := range events {
		recent := e.IsRecent(now)
		switch {
		case e.Type == models.ActivityProfileView:
			sum.TotalViews++
			if recent {
				sum.RecentViews++
			}
		case e.Type.IsLike():
			sum.TotalLikes++
			if recent {
				sum.RecentLikes++
			}
		case e.Type == models.ActivityStoryView:
			sum.StoryViews++
		case e.Type == models.ActivityStoryReaction:
			sum.StoryReactions++
		}
	}
	return sum
}
