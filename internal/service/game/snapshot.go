package game

import "github.com/iamasit07/connect-n/internal/domain"

// Snapshot is a read-only view of a session, shared with renderers and
// spectators.
type Snapshot struct {
	GameID        string            `json:"gameId"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	WinLength     int               `json:"winLength"`
	Players       []string          `json:"players"`
	Rows          []string          `json:"rows"`
	CurrentPlayer string            `json:"currentPlayer"`
	Status        domain.GameStatus `json:"status"`
	Winner        string            `json:"winner,omitempty"`
	MoveCount     int               `json:"moveCount"`
	LastColumn    int               `json:"lastColumn"`
	LastRow       int               `json:"lastRow"`
}

// Board rebuilds the board the snapshot was taken from.
func (s Snapshot) Board() (*domain.Board, error) {
	return domain.ParseBoard(s.Rows...)
}
