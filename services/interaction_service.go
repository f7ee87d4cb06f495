package services

import (
	"context"
	"sync"

	"vibin_activity/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InteractionService turns swipes into activity events and detects mutual likes.
// Detection reads the in-memory log, which a mirror write can lag behind.
type InteractionService struct {
	Activity *ActivityFeedService

	// mu makes check-then-record atomic so crossing likes match exactly once.
	mu sync.Mutex
}

// LikeResult is the outcome of a like or super like.
type LikeResult struct {
	Event   models.ActivityEvent `json:"event"`
	Matched bool                 `json:"matched"`
	MatchID string               `json:"matchId,omitempty"`
	// Repeat is set when sender had already liked receiver; nothing new is recorded.
	Repeat bool `json:"repeat,omitempty"`
}

// Like records sender liking receiver. If receiver already liked sender
// within the retained history, a match is recorded for both. Repeat likes
// and likes between already matched users record nothing new.
func (s *InteractionService) Like(ctx context.Context, sender models.Actor, receiver models.Actor, superLike bool) LikeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.findLike(sender.ID, receiver.ID); ok {
		result := LikeResult{Event: prior, Repeat: true}
		if match, ok := s.findMatch(sender.ID, receiver.ID); ok {
			result.Matched = true
			result.MatchID = matchIDOf(match)
		}
		log.Debug().Str("sender", sender.ID).Str("receiver", receiver.ID).Msg("⚠️ Repeat like ignored")
		return result
	}

	result := LikeResult{Event: s.Activity.TrackLike(ctx, sender, receiver.ID, superLike)}

	if _, ok := s.findLike(receiver.ID, sender.ID); !ok {
		log.Debug().Str("sender", sender.ID).Str("receiver", receiver.ID).Msg("⚠️ No match yet")
		return result
	}

	result.Matched = true
	if match, ok := s.findMatch(sender.ID, receiver.ID); ok {
		result.MatchID = matchIDOf(match)
		return result
	}

	result.MatchID = uuid.NewString()
	s.Activity.TrackMatch(ctx, sender, receiver, result.MatchID)

	log.Info().Str("matchId", result.MatchID).Msgf("🎉 Match created: %s ❤️ %s", sender.ID, receiver.ID)
	return result
}

// HasUserLiked reports whether liker liked or super liked liked within the
// retained history.
func (s *InteractionService) HasUserLiked(liker, liked string) bool {
	_, ok := s.findLike(liker, liked)
	return ok
}

func (s *InteractionService) findLike(liker, liked string) (models.ActivityEvent, bool) {
	for _, e := range s.Activity.RetainedActivity(liked, 0) {
		if e.ActorID == liker && e.Type.IsLike() {
			return e, true
		}
	}
	return models.ActivityEvent{}, false
}

// findMatch looks for a match between a and b on either side, since
// eviction may have dropped one of the pair.
func (s *InteractionService) findMatch(a, b string) (models.ActivityEvent, bool) {
	for _, e := range s.Activity.RetainedActivity(b, 0) {
		if e.Type == models.ActivityMatch && e.ActorID == a {
			return e, true
		}
	}
	for _, e := range s.Activity.RetainedActivity(a, 0) {
		if e.Type == models.ActivityMatch && e.ActorID == b {
			return e, true
		}
	}
	return models.ActivityEvent{}, false
}

func matchIDOf(e models.ActivityEvent) string {
	id, _ := e.Metadata[models.MetaMatchID].(string)
	return id
}
