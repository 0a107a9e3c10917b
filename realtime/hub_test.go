package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, w, r, "test-user")
	}))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev struct {
		Name string          `json:"event"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return Event{Name: ev.Name, Data: ev.Data}
}

func TestHubBroadcastReachesAllViewers(t *testing.T) {
	hub, srv := newTestHub(t)

	c1 := dial(t, srv)
	c2 := dial(t, srv)

	// Registration races the dial's return; give the hub a beat.
	time.Sleep(100 * time.Millisecond)

	hub.Broadcast(EventActividadCreada, DeletedPayload{ID: "a1"})

	for i, conn := range []*websocket.Conn{c1, c2} {
		ev := readEvent(t, conn)
		if ev.Name != EventActividadCreada {
			t.Errorf("viewer %d got event %q, want %q", i+1, ev.Name, EventActividadCreada)
		}
	}

	// Exactly once: no second frame arrives for a single broadcast.
	c1.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := c1.ReadMessage(); err == nil {
		t.Error("viewer received a second frame for a single broadcast")
	}
}

func TestHubDisconnectedViewerIsForgotten(t *testing.T) {
	hub, srv := newTestHub(t)

	c1 := dial(t, srv)
	c2 := dial(t, srv)
	time.Sleep(100 * time.Millisecond)

	c1.Close()
	time.Sleep(100 * time.Millisecond)

	// The survivor still gets events; no replay of what it missed.
	hub.Broadcast(EventActividadEliminada, DeletedPayload{ID: "a2"})
	ev := readEvent(t, c2)
	if ev.Name != EventActividadEliminada {
		t.Errorf("got event %q, want %q", ev.Name, EventActividadEliminada)
	}
}

func TestHubBroadcastOrder(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dial(t, srv)
	time.Sleep(100 * time.Millisecond)

	hub.Broadcast(EventActividadCreada, DeletedPayload{ID: "first"})
	hub.Broadcast(EventActividadActualizada, DeletedPayload{ID: "second"})

	first := readEvent(t, conn)
	second := readEvent(t, conn)
	if first.Name != EventActividadCreada || second.Name != EventActividadActualizada {
		t.Errorf("events out of order: %q then %q", first.Name, second.Name)
	}
}
