package domain

import "github.com/pkg/errors"

// Move records where the last token landed.
type Move struct {
	Column int
	Row    int
}

// Game is the state a driver threads through the rules: the board, whose
// turn it is and how the game stands.
type Game struct {
	Rules         Rules
	Board         *Board
	CurrentPlayer Token
	Status        GameStatus
	Winner        Token
	MoveCount     int
	LastMove      Move

	detector WinDetector
}

func NewGame(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		Rules:         rules,
		Board:         NewBoard(rules.Width, rules.Height),
		CurrentPlayer: rules.Players.First(),
		Status:        StatusActive,
		Winner:        Empty,
		LastMove:      Move{Column: -1, Row: -1},
		detector:      NewWinDetector(rules),
	}, nil
}

// MakeMove drops the current player's token into column, settles win or draw
// and hands the turn to the next player. A rejected move changes nothing.
func (g *Game) MakeMove(column int) (int, error) {
	if g.IsFinished() {
		return -1, errors.Wrapf(ErrGameOver, "status %s", g.Status)
	}

	row, err := g.Board.Insert(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.LastMove = Move{Column: column, Row: row}

	if winner, won := g.detector.Winner(g.Board); won {
		g.Status = StatusWon
		g.Winner = winner
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	// the token is already on the board, so a current player outside the
	// set hands the turn back to the first player instead of failing
	next, err := g.Rules.Players.Next(g.CurrentPlayer)
	if err != nil {
		next = g.Rules.Players.First()
	}
	g.CurrentPlayer = next

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
