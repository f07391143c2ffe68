package mirror

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/stepper"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Events queued per client before it is considered too slow
	sendBuffer = 64
)

// Hub fans setting changes out to websocket clients and keeps the latest
// state of every setting for new clients and the snapshot endpoint.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	state   map[string]Event
	order   []string
	closed  bool

	upgrader websocket.Upgrader
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		state:   make(map[string]Event),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Listener returns a stepper listener that publishes pref after each
// change. It also records pref's current state so the snapshot is complete
// before the first change.
func (h *Hub) Listener(pref *preference.ListPreference, st *stepper.Stepper) stepper.Listener {
	h.record(NewEvent(pref, nil))
	return stepper.ListenerFunc(func() {
		h.Broadcast(NewEvent(pref, st))
	})
}

func (h *Hub) record(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.state[ev.Key]; !ok {
		h.order = append(h.order, ev.Key)
	}
	h.state[ev.Key] = ev
}

// Broadcast records ev and queues it for every client. Clients whose queue
// is full are disconnected rather than blocking the caller.
func (h *Hub) Broadcast(ev Event) {
	h.record(ev)
	data, err := json.Marshal(ev)
	if err != nil {
		logging.Error("Failed to marshal mirror event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logging.Warn("Dropping slow mirror client", zap.String("remote_addr", c.remote))
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Snapshot returns the latest event of every setting in first-seen order.
func (h *Hub) Snapshot() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	events := make([]Event, 0, len(h.order))
	for _, key := range h.order {
		events = append(events, h.state[key])
	}
	return events
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler serves /ws (websocket stream) and /settings (JSON snapshot).
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/settings", h.serveSnapshot)
	return mux
}

func (h *Hub) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Snapshot()); err != nil {
		logging.Error("Failed to write snapshot", zap.Error(err))
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer), remote: r.RemoteAddr}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	// Queue the snapshot before registering so it precedes live events.
	for _, key := range h.order {
		if data, err := json.Marshal(h.state[key]); err == nil {
			select {
			case c.send <- data:
			default:
			}
		}
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	logging.LogConnection(c.remote, "mirror_connected")
	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump discards client messages and notices disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		logging.LogConnection(c.remote, "mirror_disconnected")
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
