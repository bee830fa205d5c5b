package websocket

import "github.com/iamasit07/connect-n/internal/service/game"

// ServerMessage is everything the server pushes to a spectator.
type ServerMessage struct {
	Type     string         `json:"type"`
	Message  string         `json:"message,omitempty"`
	Snapshot *game.Snapshot `json:"snapshot,omitempty"`
}

// ClientMessage is what a spectator may send. Only the type matters.
type ClientMessage struct {
	Type string `mapstructure:"type"`
}

const (
	TypeSnapshot = "snapshot"
	TypeResync   = "resync"
	TypePing     = "ping"
	TypePong     = "pong"
	TypeError    = "error"
)
