package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-n/internal/service/game"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Hub tracks spectator connections and fans snapshots out to them.
type Hub struct {
	// each connection carries its own write mutex, gorilla sockets allow
	// only one concurrent writer
	conns map[*websocket.Conn]*sync.Mutex
	mu    sync.RWMutex
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]*sync.Mutex),
		log:   log.Named("hub"),
	}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = &sync.Mutex{}
	h.log.Debug("spectator joined", zap.Stringer("remote", conn.RemoteAddr()), zap.Int("spectators", len(h.conns)))
}

// Remove closes conn and forgets it. Removing twice is harmless.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; ok {
		conn.Close()
		delete(h.conns, conn)
		h.log.Debug("spectator left", zap.Stringer("remote", conn.RemoteAddr()), zap.Int("spectators", len(h.conns)))
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Send writes message to one connection.
func (h *Hub) Send(conn *websocket.Conn, message ServerMessage) error {
	return h.sendWith(conn, func() ServerMessage { return message })
}

// sendWith builds the message while holding the connection's write lock, so
// a snapshot taken here can never be overtaken by an older one.
func (h *Hub) sendWith(conn *websocket.Conn, build func() ServerMessage) error {
	h.mu.RLock()
	mu, ok := h.conns[conn]
	h.mu.RUnlock()
	if !ok {
		return nil // already gone
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(build())
}

// Publish sends the snapshot to every spectator before returning, so
// spectators see moves in the order they were played. Each write is bounded
// by writeWait; spectators that fail are dropped.
func (h *Hub) Publish(snapshot game.Snapshot) {
	msg := ServerMessage{Type: TypeSnapshot, Snapshot: &snapshot}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := h.Send(conn, msg); err != nil {
			h.log.Warn("failed to send snapshot", zap.Error(err))
			h.Remove(conn)
		}
	}
}

// Ping sends a ping frame to every spectator and drops those that fail.
// It returns how many connections were dropped.
func (h *Hub) Ping() int {
	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.conns))
	for c, mu := range h.conns {
		conns[c] = mu
	}
	h.mu.RUnlock()

	dropped := 0
	for c, mu := range conns {
		mu.Lock()
		err := c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		mu.Unlock()
		if err != nil {
			h.Remove(c)
			dropped++
		}
	}
	return dropped
}

// CloseAll disconnects every spectator, used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c, mu := range h.conns {
		mu.Lock()
		c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "game server shutting down"),
			time.Now().Add(time.Second))
		mu.Unlock()
		c.Close()
		delete(h.conns, c)
	}
}
