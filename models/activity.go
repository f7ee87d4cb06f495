package models

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

// ErrUnknownActivityKind is returned by ParseActivityKind for values outside the closed set.
var ErrUnknownActivityKind = errors.New("unknown activity kind")

// ActivityKind identifies what happened in an ActivityEvent.
type ActivityKind string

var activityKinds = map[ActivityKind]struct{}{
	ActivityProfileView:   {},
	ActivityLike:          {},
	ActivitySuperLike:     {},
	ActivityMatch:         {},
	ActivityStoryView:     {},
	ActivityStoryReaction: {},
}

// ParseActivityKind validates s against the known activity kinds.
func ParseActivityKind(s string) (ActivityKind, error) {
	k := ActivityKind(s)
	if _, ok := activityKinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActivityKind, s)
	}
	return k, nil
}

// IsLike reports whether k counts as a like (regular or super).
func (k ActivityKind) IsLike() bool {
	return k == ActivityLike || k == ActivitySuperLike
}

// ActivityEvent is an immutable record of a user-facing interaction.
type ActivityEvent struct {
	ID         string         `json:"id"`
	Type       ActivityKind   `json:"type"`
	ActorID    string         `json:"actorId"`
	ActorName  string         `json:"actorName"`
	ActorPhoto string         `json:"actorPhoto,omitempty"`
	TargetID   string         `json:"targetId"`
	Timestamp  time.Time      `json:"timestamp"`
	Metadata   map[string]any `json:"metadata,omitempty"`

	// Seq is assigned by the store and orders events recorded at the same instant.
	Seq uint64 `json:"-"`
}

// NewActivityEvent is what callers hand to the store; the store assigns ID and Timestamp.
type NewActivityEvent struct {
	Type       ActivityKind
	ActorID    string
	ActorName  string
	ActorPhoto string
	TargetID   string
	Metadata   map[string]any
}

// Actor is the identity/display data of whoever triggered an event.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

// Clone returns a copy of e that shares no mutable state with it.
func (e ActivityEvent) Clone() ActivityEvent {
	e.Metadata = maps.Clone(e.Metadata)
	return e
}

// IsRecent reports whether the event falls inside the recency window at now.
func (e ActivityEvent) IsRecent(now time.Time) bool {
	return IsRecent(e.Timestamp, now)
}

// IsRecent is the single recency predicate: ts is recent iff now-ts <= RecencyWindow.
// Timestamps slightly in the future (clock skew) count as recent.
func IsRecent(ts, now time.Time) bool {
	return now.Sub(ts) <= RecencyWindow
}

// Describe renders the event as a feed line addressed to the target.
func (e ActivityEvent) Describe() string {
	name := e.ActorName
	if name == "" {
		name = "Someone"
	}

	switch e.Type {
	case ActivityProfileView:
		return name + " viewed your profile"
	case ActivityLike:
		return name + " liked you"
	case ActivitySuperLike:
		return name + " super liked you"
	case ActivityMatch:
		return "You matched with " + name
	case ActivityStoryView:
		return name + " viewed your story"
	case ActivityStoryReaction:
		if reaction, ok := e.Metadata[MetaReactionType].(string); ok && reaction != "" {
			return fmt.Sprintf("%s reacted %s to your story", name, reaction)
		}
		return name + " reacted to your story"
	default:
		return name + " interacted with you"
	}
}

// ActivitySummary aggregates counts over a set of events.
type ActivitySummary struct {
	TotalViews     int `json:"totalViews"`
	TotalLikes     int `json:"totalLikes"`
	RecentViews    int `json:"recentViews"`
	RecentLikes    int `json:"recentLikes"`
	StoryViews     int `json:"storyViews"`
	StoryReactions int `json:"storyReactions"`
}
