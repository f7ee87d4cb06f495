package socket

import (
	"vibin_activity/models"
)

// ActivityEventName is the socket event carrying a recorded ActivityEvent.
const ActivityEventName = "activity"

// Broadcaster is the part of *socketio.Server the ActivityBroadcaster needs.
type Broadcaster interface {
	BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool
}

// ActivityBroadcaster pushes every recorded event to its target's room.
type ActivityBroadcaster struct {
	Server Broadcaster
}

// activityMessage is the payload clients receive.
type activityMessage struct {
	models.ActivityEvent
	Message string `json:"message"`
}

func (b *ActivityBroadcaster) NotifyActivity(event models.ActivityEvent) {
	b.Server.BroadcastToRoom(namespace, RoomFor(event.TargetID), ActivityEventName, activityMessage{
		ActivityEvent: event,
		Message:       event.Describe(),
	})
}
