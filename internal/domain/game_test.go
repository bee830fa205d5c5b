package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to apply a sequence of columns
func playColumns(t *testing.T, g *Game, columns ...int) {
	t.Helper()
	for i, c := range columns {
		_, err := g.MakeMove(c)
		require.NoError(t, err, "move %d (column %d)", i, c)
	}
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, Token('X'), g.CurrentPlayer)
	assert.Equal(t, StatusActive, g.Status)
	assert.Equal(t, Empty, g.Winner)
	assert.Equal(t, 0, g.MoveCount)
	assert.Equal(t, Move{Column: -1, Row: -1}, g.LastMove)
	assert.False(t, g.IsFinished())
}

func TestNewGameRejectsInvalidRules(t *testing.T) {
	_, err := NewGame(Rules{Width: 2, Height: 2, WinLength: 4, Players: PlayerSet{'X', 'O'}})
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestMakeMoveAlternatesPlayers(t *testing.T) {
	g, err := NewGame(DefaultRules())
	require.NoError(t, err)

	row, err := g.MakeMove(3)
	require.NoError(t, err)
	assert.Equal(t, 5, row)
	assert.Equal(t, Token('O'), g.CurrentPlayer)
	assert.Equal(t, Move{Column: 3, Row: 5}, g.LastMove)

	row, err = g.MakeMove(3)
	require.NoError(t, err)
	assert.Equal(t, 4, row)
	assert.Equal(t, Token('X'), g.CurrentPlayer)
	assert.Equal(t, Token('O'), g.Board.Get(3, 4))
}

func TestVerticalWinEndsGame(t *testing.T) {
	g, err := NewGame(DefaultRules())
	require.NoError(t, err)

	playColumns(t, g, 0, 1, 0, 1, 0, 1)
	assert.Equal(t, StatusActive, g.Status)

	playColumns(t, g, 0)
	assert.Equal(t, StatusWon, g.Status)
	assert.Equal(t, Token('X'), g.Winner)
	assert.Equal(t, Token('X'), g.CurrentPlayer, "the winner stays the current player")
	assert.True(t, g.IsFinished())

	_, err = g.MakeMove(2)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 7, g.MoveCount)
}

func TestRejectedMoveKeepsTurn(t *testing.T) {
	rules, err := NewRules(3, 2, 3, "XO")
	require.NoError(t, err)
	g, err := NewGame(rules)
	require.NoError(t, err)

	playColumns(t, g, 0, 0)

	_, err = g.MakeMove(0)
	assert.ErrorIs(t, err, ErrColumnFull)
	_, err = g.MakeMove(3)
	assert.ErrorIs(t, err, ErrInvalidColumn)

	assert.Equal(t, Token('X'), g.CurrentPlayer)
	assert.Equal(t, 2, g.MoveCount)
}

func TestDrawGame(t *testing.T) {
	rules, err := NewRules(3, 2, 3, "XO")
	require.NoError(t, err)
	g, err := NewGame(rules)
	require.NoError(t, err)

	// bottom row X O X, top row O X O
	playColumns(t, g, 0, 1, 2, 0, 1)
	assert.Equal(t, StatusActive, g.Status)

	playColumns(t, g, 2)
	assert.Equal(t, StatusDraw, g.Status)
	assert.Equal(t, Empty, g.Winner)
	assert.True(t, g.Board.IsFull())
}

func TestThreePlayerRotation(t *testing.T) {
	rules, err := NewRules(7, 6, 4, "XOZ")
	require.NoError(t, err)
	g, err := NewGame(rules)
	require.NoError(t, err)

	playColumns(t, g, 0, 1, 2)
	assert.Equal(t, Token('X'), g.CurrentPlayer)
	assert.Equal(t, Token('O'), g.Board.Get(1, 5))
	assert.Equal(t, Token('Z'), g.Board.Get(2, 5))
}

func TestSmallGridWin(t *testing.T) {
	rules, err := NewRules(2, 2, 2, "XO")
	require.NoError(t, err)
	g, err := NewGame(rules)
	require.NoError(t, err)

	// X(0,1) O(1,1) X(0,0): X has a vertical pair
	playColumns(t, g, 0, 1, 0)
	assert.Equal(t, StatusWon, g.Status)
	assert.Equal(t, Token('X'), g.Winner)
}

func TestMoveWithForeignCurrentPlayerStillApplies(t *testing.T) {
	g, err := NewGame(DefaultRules())
	require.NoError(t, err)
	g.CurrentPlayer = 'Q'

	row, err := g.MakeMove(0)
	require.NoError(t, err)
	assert.Equal(t, 5, row)
	assert.Equal(t, 1, g.MoveCount)
	assert.Equal(t, Token('Q'), g.Board.Get(0, 5))
	assert.Equal(t, StatusActive, g.Status)
	assert.Equal(t, Token('X'), g.CurrentPlayer)
}
