package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"
)

const namespace = "/"

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// join a room named after their user handle to receive their activity.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	// Handle connection events
	server.OnConnect(namespace, func(c socketio.Conn) error {
		log.Debug().Str("socketId", c.ID()).Msg("✅ Socket connected")
		return nil
	})

	// Handle join events
	server.OnEvent(namespace, "join", func(c socketio.Conn, data map[string]string) {
		userHandle := data["userHandle"]
		if userHandle == "" {
			log.Warn().Str("socketId", c.ID()).Msg("❌ Invalid userHandle in join request")
			return
		}
		log.Debug().Str("socketId", c.ID()).Str("userHandle", userHandle).Msg("👥 Joined activity room")
		c.Join(RoomFor(userHandle))
	})

	server.OnError(namespace, func(c socketio.Conn, err error) {
		log.Warn().Err(err).Msg("⚠️ Socket error")
	})

	// Handle disconnection
	server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		log.Debug().Str("socketId", c.ID()).Str("reason", reason).Msg("❌ Socket disconnected")
	})

	return server
}

// RoomFor returns the room a user's activity is broadcast to.
func RoomFor(userHandle string) string {
	return "activity:" + userHandle
}
