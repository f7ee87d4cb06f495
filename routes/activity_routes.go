package routes

import (
	"vibin_activity/controllers"

	"github.com/gorilla/mux"
)

// RegisterActivityRoutes sets up routes for the activity feed under /api/activity
func RegisterActivityRoutes(r *mux.Router, controller *controllers.ActivityController) {
	activityRouter := r.PathPrefix("/api/activity").Subrouter()

	activityRouter.HandleFunc("", controller.RecordActivity).Methods("POST")
	activityRouter.HandleFunc("/{targetId}", controller.GetUserActivity).Methods("GET")
	activityRouter.HandleFunc("/{targetId}/views", controller.GetRecentViews).Methods("GET")
	activityRouter.HandleFunc("/{targetId}/likes", controller.GetRecentLikes).Methods("GET")
	activityRouter.HandleFunc("/{targetId}/summary", controller.GetSummary).Methods("GET")
}
