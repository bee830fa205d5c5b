package domain

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// PlayerSet is the ordered sequence of player tokens. Turns rotate through it
// in order and wrap after the last one.
type PlayerSet []Token

// NewPlayerSet builds a player set from a string of symbols, one per player.
func NewPlayerSet(symbols string) (PlayerSet, error) {
	players := PlayerSet{}
	for _, r := range symbols {
		if unicode.IsSpace(r) || r == '.' || !unicode.IsPrint(r) {
			return nil, errors.Wrapf(ErrInvalidPlayers, "symbol %q cannot be used as a token", r)
		}
		if players.Contains(Token(r)) {
			return nil, errors.Wrapf(ErrInvalidPlayers, "symbol %q used twice", r)
		}
		players = append(players, Token(r))
	}

	if len(players) < 2 {
		return nil, errors.Wrapf(ErrInvalidPlayers, "need at least 2 players, got %d", len(players))
	}
	return players, nil
}

func (p PlayerSet) Len() int { return len(p) }

func (p PlayerSet) First() Token { return p[0] }

func (p PlayerSet) Last() Token { return p[len(p)-1] }

// Index returns the position of token in the set, or -1.
func (p PlayerSet) Index(token Token) int {
	for i, t := range p {
		if t == token {
			return i
		}
	}
	return -1
}

func (p PlayerSet) Contains(token Token) bool {
	return p.Index(token) >= 0
}

// Next returns the player that moves after current.
func (p PlayerSet) Next(current Token) (Token, error) {
	i := p.Index(current)
	if i < 0 {
		return Empty, errors.Wrapf(ErrUnknownPlayer, "%q", rune(current))
	}
	return p[(i+1)%len(p)], nil
}

// Tokens returns the players as one-symbol strings.
func (p PlayerSet) Tokens() []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.String()
	}
	return out
}

func (p PlayerSet) String() string {
	return strings.Join(p.Tokens(), "")
}
