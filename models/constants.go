package models

import "time"

// ✅ Activity kinds (closed set, see ParseActivityKind)
const (
	ActivityProfileView   ActivityKind = "profile_view"
	ActivityLike          ActivityKind = "like"
	ActivitySuperLike     ActivityKind = "super_like"
	ActivityMatch         ActivityKind = "match"
	ActivityStoryView     ActivityKind = "story_view"
	ActivityStoryReaction ActivityKind = "story_reaction"
)

// ✅ Badge types
const (
	BadgeVerified       BadgeType = "verified"
	BadgePopular        BadgeType = "popular"
	BadgeNewUser        BadgeType = "new_user"
	BadgePremium        BadgeType = "premium"
	BadgeTopPick        BadgeType = "top_pick"
	BadgeRecentlyActive BadgeType = "recently_active"
)

// ✅ Metadata keys understood by Describe and the story trackers
const (
	MetaStoryID      = "storyId"
	MetaReactionType = "reactionType"
	MetaMatchID      = "matchId"
)

const (
	// RecencyWindow is the lookback used everywhere an event or user is "recent".
	RecencyWindow = 24 * time.Hour

	// NewUserWindow is how long after sign-up a profile carries the new_user badge.
	NewUserWindow = 7 * 24 * time.Hour

	// DefaultRetention is the number of events the in-memory log keeps.
	DefaultRetention = 1000

	// DefaultActivityLimit is used when a caller asks for a non-positive limit.
	DefaultActivityLimit = 50

	// RecentScanLimit bounds how much history the recent views/likes queries look at.
	RecentScanLimit = 100
)

// ActivityEventsTable is the DynamoDB table mirroring the activity log
const ActivityEventsTable = "ActivityEvents"
