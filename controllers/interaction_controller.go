package controllers

import (
	"encoding/json"
	"net/http"

	"vibin_activity/models"
	"vibin_activity/services"

	"github.com/rs/zerolog/log"
)

// InteractionController struct
type InteractionController struct {
	InteractionService *services.InteractionService
}

// NewInteractionController initializes the controller
func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{InteractionService: service}
}

// HandleLikeUser - User likes (or super likes) another user
func (c *InteractionController) HandleLikeUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Sender    models.Actor `json:"sender"`
		Receiver  models.Actor `json:"receiver"`
		SuperLike bool         `json:"superLike"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Sender.ID == "" || request.Receiver.ID == "" {
		WriteJSONError(w, http.StatusBadRequest, "sender.id and receiver.id are required")
		return
	}
	if request.Sender.ID == request.Receiver.ID {
		WriteJSONError(w, http.StatusBadRequest, "cannot like yourself")
		return
	}

	log.Debug().Str("sender", request.Sender.ID).Str("receiver", request.Receiver.ID).Msg("💖 Like")

	result := c.InteractionService.Like(r.Context(), request.Sender, request.Receiver, request.SuperLike)
	WriteJSONResponse(w, http.StatusOK, result)
}

// HandleViewProfile - User opened another user's profile
func (c *InteractionController) HandleViewProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Viewer   models.Actor `json:"viewer"`
		TargetID string       `json:"targetId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Viewer.ID == "" || request.TargetID == "" {
		WriteJSONError(w, http.StatusBadRequest, "viewer.id and targetId are required")
		return
	}
	// own profile views are not activity
	if request.Viewer.ID == request.TargetID {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	event := c.InteractionService.Activity.TrackProfileView(r.Context(), request.Viewer, request.TargetID)
	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"status": "recorded", "event": event})
}
