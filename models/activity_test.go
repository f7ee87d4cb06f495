package models

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityKind(t *testing.T) {
	for _, s := range []string{"profile_view", "like", "super_like", "match", "story_view", "story_reaction"} {
		k, err := ParseActivityKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, ActivityKind(s), k)
	}

	_, err := ParseActivityKind("poke")
	assert.ErrorIs(t, err, ErrUnknownActivityKind)

	_, err = ParseActivityKind("")
	assert.ErrorIs(t, err, ErrUnknownActivityKind)
}

func TestIsRecent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just now", 0, true},
		{"23h59m ago", 23*time.Hour + 59*time.Minute, true},
		{"exactly 24h ago", 24 * time.Hour, true},
		{"24h01m ago", 24*time.Hour + time.Minute, false},
		{"a week ago", 7 * 24 * time.Hour, false},
		{"slightly in the future", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecent(now.Add(-tt.age), now))
			assert.Equal(t, tt.want, ActivityEvent{Timestamp: now.Add(-tt.age)}.IsRecent(now))
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		event ActivityEvent
		want  string
	}{
		{ActivityEvent{Type: ActivityProfileView, ActorName: "Alex"}, "Alex viewed your profile"},
		{ActivityEvent{Type: ActivityLike, ActorName: "Alex"}, "Alex liked you"},
		{ActivityEvent{Type: ActivitySuperLike, ActorName: "Alex"}, "Alex super liked you"},
		{ActivityEvent{Type: ActivityMatch, ActorName: "Alex"}, "You matched with Alex"},
		{ActivityEvent{Type: ActivityStoryView}, "Someone viewed your story"},
		{ActivityEvent{Type: ActivityStoryReaction, ActorName: "Alex"}, "Alex reacted to your story"},
		{
			ActivityEvent{Type: ActivityStoryReaction, ActorName: "Alex", Metadata: map[string]any{MetaReactionType: "❤️"}},
			"Alex reacted ❤️ to your story",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.Describe())
	}
}

func TestActivitySortKey_OrdersByTime(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	keys := []string{
		ActivitySortKey(base.Add(10*time.Second), 1, "a"),
		ActivitySortKey(base, 2, "z"),
		ActivitySortKey(base.Add(time.Nanosecond), 3, "b"),
	}

	sort.Strings(keys)
	assert.Equal(t, ActivitySortKey(base, 2, "z"), keys[0])
	assert.Equal(t, ActivitySortKey(base.Add(10*time.Second), 1, "a"), keys[2])
}

func TestActivitySortKey_SameInstantOrdersBySeq(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// ids are random uuids in production, so they must not decide the order
	keys := []string{
		ActivitySortKey(base, 10, "aaa"),
		ActivitySortKey(base, 9, "zzz"),
		ActivitySortKey(base, 2, "mmm"),
	}

	sort.Strings(keys)
	assert.Equal(t, []string{
		ActivitySortKey(base, 2, "mmm"),
		ActivitySortKey(base, 9, "zzz"),
		ActivitySortKey(base, 10, "aaa"),
	}, keys)
}

func TestActivityItem_RoundTrip(t *testing.T) {
	e := ActivityEvent{
		ID:        "evt-1",
		Type:      ActivityStoryReaction,
		ActorID:   "u1",
		TargetID:  "u2",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Metadata:  map[string]any{MetaStoryID: "s1"},
		Seq:       7,
	}

	item := NewActivityItem(e)
	assert.Equal(t, "u2", item.TargetID)
	assert.Equal(t, ActivitySortKey(e.Timestamp, 7, "evt-1"), item.SortKey)
	assert.Equal(t, e, item.Event())
}
