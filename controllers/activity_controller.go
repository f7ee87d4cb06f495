package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vibin_activity/models"
	"vibin_activity/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const maxActivityLimit = models.DefaultRetention

// ActivityController handles HTTP requests for the activity feed
type ActivityController struct {
	ActivityService *services.ActivityFeedService
	Photos          services.PhotoSigner
}

// NewActivityController creates a new ActivityController instance
func NewActivityController(activityService *services.ActivityFeedService, photos services.PhotoSigner) *ActivityController {
	if photos == nil {
		photos = services.PassthroughPhotoSigner{}
	}
	return &ActivityController{ActivityService: activityService, Photos: photos}
}

// activityView is an event as rendered for clients
type activityView struct {
	models.ActivityEvent
	Message string `json:"message"`
}

type feedResponse struct {
	Events []activityView `json:"events"`
	Count  int            `json:"count"`
}

// RecordActivity records a new event, e.g. from the swipe or story screens
func (c *ActivityController) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Type       string         `json:"type"`
		ActorID    string         `json:"actorId"`
		ActorName  string         `json:"actorName"`
		ActorPhoto string         `json:"actorPhoto"`
		TargetID   string         `json:"targetId"`
		Metadata   map[string]any `json:"metadata"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	kind, err := models.ParseActivityKind(request.Type)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if request.ActorID == "" || request.TargetID == "" {
		WriteJSONError(w, http.StatusBadRequest, "actorId and targetId are required")
		return
	}

	event := c.ActivityService.Record(r.Context(), models.NewActivityEvent{
		Type:       kind,
		ActorID:    request.ActorID,
		ActorName:  request.ActorName,
		ActorPhoto: request.ActorPhoto,
		TargetID:   request.TargetID,
		Metadata:   request.Metadata,
	})

	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"status": "recorded",
		"event":  c.render(r.Context(), []models.ActivityEvent{event})[0],
	})
}

// GetUserActivity returns the feed for a target user
func (c *ActivityController) GetUserActivity(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["targetId"]

	limit := models.DefaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxActivityLimit {
			WriteJSONError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxActivityLimit))
			return
		}
		limit = n
	}

	c.writeFeed(w, r, c.ActivityService.GetUserActivity(r.Context(), targetID, limit))
}

// GetRecentViews returns profile views from the last 24 hours
func (c *ActivityController) GetRecentViews(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["targetId"]
	c.writeFeed(w, r, c.ActivityService.GetRecentProfileViews(r.Context(), targetID))
}

// GetRecentLikes returns likes and super likes from the last 24 hours
func (c *ActivityController) GetRecentLikes(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["targetId"]
	c.writeFeed(w, r, c.ActivityService.GetRecentLikes(r.Context(), targetID))
}

// GetSummary returns aggregate counts over the target's recent history
func (c *ActivityController) GetSummary(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["targetId"]
	events := c.ActivityService.GetUserActivity(r.Context(), targetID, models.RecentScanLimit)
	WriteJSONResponse(w, http.StatusOK, c.ActivityService.GetActivitySummary(events))
}

func (c *ActivityController) writeFeed(w http.ResponseWriter, r *http.Request, events []models.ActivityEvent) {
	views := c.render(r.Context(), events)
	WriteJSONResponse(w, http.StatusOK, feedResponse{Events: views, Count: len(views)})
}

// render attaches the feed line and resolves actor photos. A photo that
// cannot be signed is dropped rather than failing the whole feed.
func (c *ActivityController) render(ctx context.Context, events []models.ActivityEvent) []activityView {
	views := make([]activityView, 0, len(events))
	for _, e := range events {
		photo, err := c.Photos.SignPhotoURL(ctx, e.ActorPhoto)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Warn().Err(err).Str("id", e.ID).Msg("⚠️ Could not sign actor photo")
			}
			photo = ""
		}
		e.ActorPhoto = photo
		views = append(views, activityView{ActivityEvent: e, Message: e.Describe()})
	}
	return views
}
