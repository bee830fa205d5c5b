package game

import (
	"sync"
	"time"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/iamasit07/connect-n/pkg/uid"
	"go.uber.org/zap"
)

// Observer receives a snapshot after every applied move.
type Observer interface {
	Publish(snapshot Snapshot)
}

// Session owns one game. The driver is the only writer; spectators read
// snapshots concurrently.
type Session struct {
	GameID     string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time

	mu        sync.RWMutex
	observers []Observer
	log       *zap.Logger
}

func NewSession(rules domain.Rules, log *zap.Logger) (*Session, error) {
	g, err := domain.NewGame(rules)
	if err != nil {
		return nil, err
	}

	s := &Session{
		GameID:    uid.GenerateGameID(),
		Game:      g,
		CreatedAt: time.Now(),
		log:       log.Named("session"),
	}

	s.log.Info("created session",
		zap.String("game_id", s.GameID),
		zap.Int("width", rules.Width),
		zap.Int("height", rules.Height),
		zap.Int("win_length", rules.WinLength),
		zap.String("players", rules.Players.String()),
	)
	return s, nil
}

// Subscribe registers o for snapshots of every later move.
func (s *Session) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Play applies a move for the current player and returns the landing row.
func (s *Session) Play(column int) (int, error) {
	s.mu.Lock()
	player := s.Game.CurrentPlayer
	row, err := s.Game.MakeMove(column)
	if err != nil {
		s.mu.Unlock()
		return -1, err
	}
	if s.Game.IsFinished() {
		s.FinishedAt = time.Now()
	}
	snap := s.snapshotLocked()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	s.log.Debug("move applied",
		zap.String("game_id", s.GameID),
		zap.Stringer("player", player),
		zap.Int("column", column),
		zap.Int("row", row),
	)

	switch snap.Status {
	case domain.StatusWon:
		s.log.Info("game won",
			zap.String("game_id", s.GameID),
			zap.String("winner", snap.Winner),
			zap.Int("moves", snap.MoveCount),
			zap.Duration("duration", s.FinishedAt.Sub(s.CreatedAt)),
		)
	case domain.StatusDraw:
		s.log.Info("game drawn",
			zap.String("game_id", s.GameID),
			zap.Int("moves", snap.MoveCount),
			zap.Duration("duration", s.FinishedAt.Sub(s.CreatedAt)),
		)
	}

	for _, o := range observers {
		o.Publish(snap)
	}
	return row, nil
}

// Snapshot returns the current state of the game.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Board returns a copy of the board that callers may keep.
func (s *Session) Board() *domain.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Game.Board.Clone()
}

func (s *Session) CurrentPlayer() domain.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Game.CurrentPlayer
}

// Winner returns the winning token, or domain.Empty while nobody has won.
func (s *Session) Winner() domain.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Game.Winner
}

func (s *Session) IsFinished() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Game.IsFinished()
}

func (s *Session) snapshotLocked() Snapshot {
	g := s.Game
	snap := Snapshot{
		GameID:        s.GameID,
		Width:         g.Rules.Width,
		Height:        g.Rules.Height,
		WinLength:     g.Rules.WinLength,
		Players:       g.Rules.Players.Tokens(),
		Rows:          g.Board.Rows(),
		CurrentPlayer: g.CurrentPlayer.String(),
		Status:        g.Status,
		MoveCount:     g.MoveCount,
		LastColumn:    g.LastMove.Column,
		LastRow:       g.LastMove.Row,
	}
	if g.Winner != domain.Empty {
		snap.Winner = g.Winner.String()
	}
	return snap
}
