package domain

import "github.com/pkg/errors"

const (
	DefaultWidth     = 7
	DefaultHeight    = 6
	DefaultWinLength = 4
	DefaultPlayers   = "XO"
)

// Rules fixes the board dimensions, the run length needed to win and the
// players for one game.
type Rules struct {
	Width     int
	Height    int
	WinLength int
	Players   PlayerSet
}

// DefaultRules is the classic 7x6 connect four between X and O.
func DefaultRules() Rules {
	players, _ := NewPlayerSet(DefaultPlayers)
	return Rules{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		WinLength: DefaultWinLength,
		Players:   players,
	}
}

func NewRules(width, height, winLength int, symbols string) (Rules, error) {
	players, err := NewPlayerSet(symbols)
	if err != nil {
		return Rules{}, err
	}
	r := Rules{Width: width, Height: height, WinLength: winLength, Players: players}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r Rules) Validate() error {
	if r.Width < 1 || r.Height < 1 {
		return errors.Wrapf(ErrInvalidRules, "invalid grid size: %dx%d", r.Width, r.Height)
	}
	if r.WinLength < 2 {
		return errors.Wrapf(ErrInvalidRules, "invalid win length: %d, minimum 2", r.WinLength)
	}
	if r.Width < r.WinLength && r.Height < r.WinLength {
		return errors.Wrapf(ErrInvalidRules, "grid %dx%d too small for a run of %d", r.Width, r.Height, r.WinLength)
	}
	if len(r.Players) < 2 {
		return errors.Wrapf(ErrInvalidPlayers, "need at least 2 players, got %d", len(r.Players))
	}
	return nil
}
