package socket

import (
	"testing"

	"vibin_activity/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type broadcast struct {
	namespace, room, event string
	args                   []interface{}
}

// mockServer implements Broadcaster for testing.
type mockServer struct {
	sent []broadcast
}

func (m *mockServer) BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool {
	m.sent = append(m.sent, broadcast{namespace, room, event, args})
	return true
}

func TestActivityBroadcaster_SendsToTargetRoom(t *testing.T) {
	server := &mockServer{}
	b := &ActivityBroadcaster{Server: server}

	b.NotifyActivity(models.ActivityEvent{ID: "evt-1", Type: models.ActivityMatch, ActorName: "Alex", TargetID: "sam"})

	require.Len(t, server.sent, 1)
	sent := server.sent[0]
	assert.Equal(t, "/", sent.namespace)
	assert.Equal(t, "activity:sam", sent.room)
	assert.Equal(t, ActivityEventName, sent.event)

	require.Len(t, sent.args, 1)
	msg, ok := sent.args[0].(activityMessage)
	require.True(t, ok)
	assert.Equal(t, "evt-1", msg.ID)
	assert.Equal(t, "You matched with Alex", msg.Message)
}

func TestNewSocketServer(t *testing.T) {
	server := NewSocketServer()
	require.NotNil(t, server)
}
