package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// RegisterSocketRoutes mounts the socket.io handler under /socket.io/.
func RegisterSocketRoutes(r *mux.Router, handler http.Handler) {
	r.PathPrefix("/socket.io/").Handler(withoutWriteDeadline(handler))
}

// withoutWriteDeadline lifts the server's WriteTimeout for long-lived
// requests such as engine.io long polls, which are held open past it.
func withoutWriteDeadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
			log.Debug().Err(err).Msg("⚠️ Could not clear write deadline")
		}
		next.ServeHTTP(w, r)
	})
}
