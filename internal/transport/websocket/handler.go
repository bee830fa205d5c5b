package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-n/internal/service/game"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// SnapshotSource is the game a spectator watches.
type SnapshotSource interface {
	Snapshot() game.Snapshot
}

// Handler upgrades watch requests and serves one spectator per connection.
type Handler struct {
	Hub         *Hub
	Source      SnapshotSource
	Upgrader    websocket.Upgrader
	ReadTimeout time.Duration
	log         *zap.Logger
}

// NewHandler creates a spectator handler. originAllowed decides which
// browser origins may open a socket.
func NewHandler(hub *Hub, source SnapshotSource, readTimeout time.Duration, originAllowed func(origin string) bool, log *zap.Logger) *Handler {
	return &Handler{
		Hub:         hub,
		Source:      source,
		ReadTimeout: readTimeout,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || originAllowed(origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log.Named("ws"),
	}
}

// HandleWatch is the gin handler that upgrades the connection
func (h *Handler) HandleWatch(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade error", zap.Error(err))
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single spectator connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	h.Hub.Add(conn)
	defer h.Hub.Remove(conn)

	// Set read deadline to detect stale connections, pongs from the sweeper
	// pings push it forward
	conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
		return nil
	})

	if err := h.sendSnapshot(conn); err != nil {
		h.log.Warn("failed to send initial snapshot", zap.Error(err))
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Info("spectator disconnected unexpectedly", zap.Error(err))
			}
			return
		}

		msg, err := decodeClientMessage(data)
		if err != nil {
			h.Hub.Send(conn, ServerMessage{Type: TypeError, Message: "invalid message"})
			continue
		}

		switch msg.Type {
		case TypeResync:
			err = h.sendSnapshot(conn)
		case TypePing:
			err = h.Hub.Send(conn, ServerMessage{Type: TypePong})
		default:
			err = h.Hub.Send(conn, ServerMessage{Type: TypeError, Message: "unknown message type: " + msg.Type})
		}
		if err != nil {
			h.log.Warn("write failed", zap.Error(err))
			return
		}
	}
}

func (h *Handler) sendSnapshot(conn *websocket.Conn) error {
	return h.Hub.sendWith(conn, func() ServerMessage {
		snap := h.Source.Snapshot()
		return ServerMessage{Type: TypeSnapshot, Snapshot: &snap}
	})
}

// decodeClientMessage accepts any JSON object and keeps the fields a
// spectator may set.
func decodeClientMessage(data []byte) (ClientMessage, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ClientMessage{}, err
	}

	var msg ClientMessage
	if err := mapstructure.Decode(raw, &msg); err != nil {
		return ClientMessage{}, err
	}
	return msg, nil
}
