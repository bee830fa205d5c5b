package domain

// Token is the symbol a player drops into the grid. The zero value marks an
// empty cell.
type Token rune

const Empty Token = 0

func (t Token) String() string {
	if t == Empty {
		return " "
	}
	return string(t)
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn  Error = "invalid column"
	ErrColumnFull     Error = "column is full"
	ErrInvalidToken   Error = "invalid token"
	ErrFloatingToken  Error = "token has an empty cell beneath it"
	ErrInvalidRules   Error = "invalid rules"
	ErrInvalidPlayers Error = "invalid player set"
	ErrUnknownPlayer  Error = "unknown player"
	ErrGameOver       Error = "game is over"
)
