package services

import (
	"math/rand"
	"time"

	"vibin_activity/models"
)

// popularThreshold stands in for a real popularity score: a draw above it
// (about 30% of draws) earns the popular badge.
const popularThreshold = 0.7

// RandomSource yields uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

type defaultRandom struct{}

func (defaultRandom) Float64() float64 { return rand.Float64() }

// BadgeService derives presentation badges from a user snapshot.
type BadgeService struct {
	Random RandomSource
	Now    func() time.Time
}

// NewBadgeService returns a BadgeService backed by math/rand/v2 and the wall clock.
func NewBadgeService() *BadgeService {
	return &BadgeService{Random: defaultRandom{}, Now: time.Now}
}

// DeriveBadges evaluates every badge rule independently, in a fixed order:
// verified, premium, new_user, recently_active, popular.
func (bs *BadgeService) DeriveBadges(user models.UserProfile) []models.ProfileBadge {
	now := bs.now()
	badges := []models.ProfileBadge{}

	add := func(t models.BadgeType) {
		badges = append(badges, models.BadgeCatalog[t])
		badgesDerived.WithLabelValues(string(t)).Inc()
	}

	if user.IsVerified {
		add(models.BadgeVerified)
	}
	if user.IsPremium {
		add(models.BadgePremium)
	}
	if !user.CreatedAt.IsZero() && now.Sub(user.CreatedAt) <= models.NewUserWindow {
		add(models.BadgeNewUser)
	}
	if !user.LastActive.IsZero() && models.IsRecent(user.LastActive, now) {
		add(models.BadgeRecentlyActive)
	}
	if bs.random().Float64() > popularThreshold {
		add(models.BadgePopular)
	}

	return badges
}

func (bs *BadgeService) now() time.Time {
	if bs.Now == nil {
		return time.Now()
	}
	return bs.Now()
}

func (bs *BadgeService) random() RandomSource {
	if bs.Random == nil {
		return defaultRandom{}
	}
	return bs.Random
}
