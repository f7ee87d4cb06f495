package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"vibin_activity/models"
	"vibin_activity/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// ProfileStore looks up stored user profiles.
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userHandle string) (*models.UserProfile, error)
}

// BadgeController handles requests for profile badges
type BadgeController struct {
	BadgeService *services.BadgeService
	// Profiles is optional; without it only snapshot derivation is served.
	Profiles ProfileStore
}

// NewBadgeController creates a new BadgeController instance
func NewBadgeController(badgeService *services.BadgeService, profiles ProfileStore) *BadgeController {
	return &BadgeController{BadgeService: badgeService, Profiles: profiles}
}

// DeriveBadges derives badges for a profile snapshot in the request body
func (c *BadgeController) DeriveBadges(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"badges": c.BadgeService.DeriveBadges(profile),
	})
}

// GetUserBadges derives badges for a stored profile
func (c *BadgeController) GetUserBadges(w http.ResponseWriter, r *http.Request) {
	if c.Profiles == nil {
		WriteJSONError(w, http.StatusServiceUnavailable, "profile store is not configured")
		return
	}

	userHandle := mux.Vars(r)["userHandle"]
	profile, err := c.Profiles.GetUserProfile(r.Context(), userHandle)
	if errors.Is(err, services.ErrProfileNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("userHandle", userHandle).Msg("❌ Failed to fetch profile")
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"userhandle": profile.UserHandle,
		"badges":     c.BadgeService.DeriveBadges(*profile),
	})
}
