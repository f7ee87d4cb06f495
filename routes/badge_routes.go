package routes

import (
	"vibin_activity/controllers"

	"github.com/gorilla/mux"
)

// RegisterBadgeRoutes sets up routes for profile badges under /api/badges
func RegisterBadgeRoutes(r *mux.Router, controller *controllers.BadgeController) {
	badgeRouter := r.PathPrefix("/api/badges").Subrouter()

	badgeRouter.HandleFunc("", controller.DeriveBadges).Methods("POST")
	badgeRouter.HandleFunc("/{userHandle}", controller.GetUserBadges).Methods("GET")
}
