package routes

import (
	"vibin_activity/controllers"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes registers swipe and profile-view routes under /api/interactions
func RegisterInteractionRoutes(r *mux.Router, controller *controllers.InteractionController) {
	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()

	interactionRouter.HandleFunc("/like", controller.HandleLikeUser).Methods("POST")
	interactionRouter.HandleFunc("/view", controller.HandleViewProfile).Methods("POST")
}
