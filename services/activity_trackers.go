package services

import (
	"context"

	"vibin_activity/models"
)

func (s *ActivityFeedService) track(ctx context.Context, kind models.ActivityKind, actor models.Actor, targetID string, meta map[string]any) models.ActivityEvent {
	return s.Record(ctx, models.NewActivityEvent{
		Type:       kind,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		ActorPhoto: actor.Photo,
		TargetID:   targetID,
		Metadata:   meta,
	})
}

// TrackProfileView records that actor opened targetID's profile.
func (s *ActivityFeedService) TrackProfileView(ctx context.Context, actor models.Actor, targetID string) models.ActivityEvent {
	return s.track(ctx, models.ActivityProfileView, actor, targetID, nil)
}

// TrackLike records a like, or a super like when superLike is set.
func (s *ActivityFeedService) TrackLike(ctx context.Context, actor models.Actor, targetID string, superLike bool) models.ActivityEvent {
	kind := models.ActivityLike
	if superLike {
		kind = models.ActivitySuperLike
	}
	return s.track(ctx, kind, actor, targetID, nil)
}

// TrackMatch records a match event on both sides, so each user sees the
// other in their feed. The first returned event targets b, the second a.
func (s *ActivityFeedService) TrackMatch(ctx context.Context, a, b models.Actor, matchID string) (models.ActivityEvent, models.ActivityEvent) {
	var meta map[string]any
	if matchID != "" {
		meta = map[string]any{models.MetaMatchID: matchID}
	}
	toB := s.track(ctx, models.ActivityMatch, a, b.ID, meta)
	toA := s.track(ctx, models.ActivityMatch, b, a.ID, meta)
	return toB, toA
}

// TrackStoryView records that actor watched one of targetID's stories.
func (s *ActivityFeedService) TrackStoryView(ctx context.Context, actor models.Actor, targetID, storyID string) models.ActivityEvent {
	return s.track(ctx, models.ActivityStoryView, actor, targetID, map[string]any{
		models.MetaStoryID: storyID,
	})
}

// TrackStoryReaction records a reaction (an emoji, usually) to a story.
func (s *ActivityFeedService) TrackStoryReaction(ctx context.Context, actor models.Actor, targetID, storyID, reaction string) models.ActivityEvent {
	return s.track(ctx, models.ActivityStoryReaction, actor, targetID, map[string]any{
		models.MetaStoryID:      storyID,
		models.MetaReactionType: reaction,
	})
}
