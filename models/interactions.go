package models

import (
	"fmt"
	"time"
)

// ActivityItem is the DynamoDB row shape of a mirrored ActivityEvent.
type ActivityItem struct {
	TargetID   string         `dynamodbav:"targetId" json:"targetId"` // ✅ Partition Key
	SortKey    string         `dynamodbav:"sortKey" json:"sortKey"`   // ✅ Sort Key, newest last
	ID         string         `dynamodbav:"id" json:"id"`
	Type       string         `dynamodbav:"type" json:"type"` // profile_view, like, ...
	ActorID    string         `dynamodbav:"actorId" json:"actorId"`
	ActorName  string         `dynamodbav:"actorName,omitempty" json:"actorName,omitempty"`
	ActorPhoto string         `dynamodbav:"actorPhoto,omitempty" json:"actorPhoto,omitempty"`
	CreatedAt  time.Time      `dynamodbav:"createdAt" json:"createdAt"`
	Seq        uint64         `dynamodbav:"seq" json:"seq"`
	Metadata   map[string]any `dynamodbav:"metadata,omitempty" json:"metadata,omitempty"`
}

// ActivitySortKey orders rows by creation time, then record sequence. Both
// numbers are zero padded so lexical order matches numeric order.
func ActivitySortKey(ts time.Time, seq uint64, id string) string {
	return fmt.Sprintf("%019d#%020d#%s", ts.UnixNano(), seq, id)
}

// NewActivityItem converts an event into its DynamoDB row.
func NewActivityItem(e ActivityEvent) ActivityItem {
	return ActivityItem{
		TargetID:   e.TargetID,
		SortKey:    ActivitySortKey(e.Timestamp, e.Seq, e.ID),
		ID:         e.ID,
		Type:       string(e.Type),
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		ActorPhoto: e.ActorPhoto,
		CreatedAt:  e.Timestamp,
		Seq:        e.Seq,
		Metadata:   e.Metadata,
	}
}

// Event converts the row back into an ActivityEvent.
func (i ActivityItem) Event() ActivityEvent {
	return ActivityEvent{
		ID:         i.ID,
		Type:       ActivityKind(i.Type),
		ActorID:    i.ActorID,
		ActorName:  i.ActorName,
		ActorPhoto: i.ActorPhoto,
		TargetID:   i.TargetID,
		Timestamp:  i.CreatedAt,
		Metadata:   i.Metadata,
		Seq:        i.Seq,
	}
}
