package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-n/internal/console"
	"github.com/iamasit07/connect-n/internal/service/game"
)

// SnapshotSource is the game being watched.
type SnapshotSource interface {
	Snapshot() game.Snapshot
}

// SpectatorCounter reports how many websocket spectators are attached.
type SpectatorCounter interface {
	Count() int
}

type WatchHandler struct {
	Source     SnapshotSource
	Spectators SpectatorCounter
}

func NewWatchHandler(source SnapshotSource, spectators SpectatorCounter) *WatchHandler {
	return &WatchHandler{Source: source, Spectators: spectators}
}

type watchResponse struct {
	game.Snapshot
	SpectatorCount int `json:"spectatorCount"`
}

// GetGame returns the current snapshot as JSON
func (h *WatchHandler) GetGame(c *gin.Context) {
	resp := watchResponse{Snapshot: h.Source.Snapshot()}
	if h.Spectators != nil {
		resp.SpectatorCount = h.Spectators.Count()
	}
	c.JSON(http.StatusOK, resp)
}

// GetBoard returns the board in the same text layout the console prints
func (h *WatchHandler) GetBoard(c *gin.Context) {
	board, err := h.Source.Snapshot().Board()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render board"})
		return
	}
	c.String(http.StatusOK, console.FormatBoard(board))
}
