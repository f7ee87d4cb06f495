package routes

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vibin_activity/socket"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocketRouter(handler http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(InstrumentMiddleware)
	RegisterRoutes(r)
	RegisterSocketRoutes(r, handler)
	return r
}

func TestSocketRoute_WebsocketUpgrade(t *testing.T) {
	server := socket.NewSocketServer()
	go func() { _ = server.Serve() }()
	defer server.Close()

	ts := httptest.NewServer(newSocketRouter(server))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket.io/?EIO=3&transport=websocket"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	// engine.io greets with an open packet
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "0"), string(msg))
}

func TestSocketRoute_OutlivesWriteTimeout(t *testing.T) {
	// stands in for a long poll held open past the server's WriteTimeout
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, "3")
	})

	ts := httptest.NewUnstartedServer(newSocketRouter(slow))
	ts.Config.WriteTimeout = 50 * time.Millisecond
	ts.Start()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/socket.io/?EIO=3&transport=polling")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", string(body))
}

func TestResponseWriter_Hijack(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}

	var w http.ResponseWriter = rw
	hijacker, ok := w.(http.Hijacker)
	require.True(t, ok)

	// the recorder cannot be hijacked; the error must come from it, not the wrapper
	_, _, err := hijacker.Hijack()
	assert.True(t, errors.Is(err, http.ErrNotSupported))

	_, ok = w.(http.Flusher)
	assert.True(t, ok)
}
