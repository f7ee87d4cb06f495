package models

// BadgeType identifies a ProfileBadge.
type BadgeType string

// ProfileBadge is a derived, never-persisted label for a profile.
type ProfileBadge struct {
	ID          string    `json:"id"`
	Type        BadgeType `json:"type"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
}

// BadgeCatalog holds the display data for every badge type.
var BadgeCatalog = map[BadgeType]ProfileBadge{
	BadgeVerified: {
		ID: "verified", Type: BadgeVerified, Label: "Verified", Icon: "✅", Color: "#3B82F6",
		Description: "Photo verified profile",
	},
	BadgePopular: {
		ID: "popular", Type: BadgePopular, Label: "Popular", Icon: "🔥", Color: "#F97316",
		Description: "Getting lots of attention",
	},
	BadgeNewUser: {
		ID: "new_user", Type: BadgeNewUser, Label: "New", Icon: "🌱", Color: "#22C55E",
		Description: "Joined this week",
	},
	BadgePremium: {
		ID: "premium", Type: BadgePremium, Label: "Premium", Icon: "💎", Color: "#A855F7",
		Description: "Premium member",
	},
	BadgeTopPick: {
		ID: "top_pick", Type: BadgeTopPick, Label: "Top Pick", Icon: "⭐", Color: "#EAB308",
		Description: "One of today's top picks",
	},
	BadgeRecentlyActive: {
		ID: "recently_active", Type: BadgeRecentlyActive, Label: "Active", Icon: "🟢", Color: "#10B981",
		Description: "Active in the last 24 hours",
	},
}
