package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is a width x height grid addressed as (column, row). Row 0 is the
// top row, row height-1 the bottom one. Cells are stored row-major:
// index(x, y) = y*width + x.
type Board struct {
	width  int
	height int
	cells  []Token
	moves  int
}

func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Token, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Moves returns how many tokens have been dropped so far.
func (b *Board) Moves() int { return b.moves }

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the token at (x, y), or Empty when the cell is outside the grid.
func (b *Board) Get(x, y int) Token {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[b.index(x, y)]
}

// Insert drops token into column and returns the row it landed on.
func (b *Board) Insert(column int, token Token) (int, error) {
	if column < 0 || column >= b.width {
		return -1, errors.Wrapf(ErrInvalidColumn, "column %d outside [0,%d)", column, b.width)
	}
	if token == Empty {
		return -1, errors.Wrap(ErrInvalidToken, "cannot insert an empty token")
	}

	// scan from the bottom row up to the first free cell
	for row := b.height - 1; row >= 0; row-- {
		i := b.index(column, row)
		if b.cells[i] == Empty {
			b.cells[i] = token
			b.moves++
			return row, nil
		}
	}

	return -1, errors.Wrapf(ErrColumnFull, "column %d", column)
}

// IsFull reports whether no empty cell is left anywhere on the board.
func (b *Board) IsFull() bool {
	return b.moves >= len(b.cells)
}

// ColumnFull reports whether column has no empty cell. Out of range columns
// are reported as full.
func (b *Board) ColumnFull(column int) bool {
	if column < 0 || column >= b.width {
		return true
	}
	return b.Get(column, 0) != Empty
}

// EmptyCells counts the free cells of column.
func (b *Board) EmptyCells(column int) int {
	if column < 0 || column >= b.width {
		return 0
	}
	n := 0
	for row := 0; row < b.height && b.Get(column, row) == Empty; row++ {
		n++
	}
	return n
}

// ValidColumns lists every column that can still take a token.
func (b *Board) ValidColumns() []int {
	cols := []int{}
	for c := 0; c < b.width; c++ {
		if !b.ColumnFull(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Token, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells, moves: b.moves}
}

// Rows returns the board as strings, top row first, with a space for every
// empty cell.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.Get(x, y).String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// ParseBoard builds a board from rows given top first. A space or '.' is an
// empty cell, anything else is a token. Rows must have equal length and
// respect gravity.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidRules, "board needs at least one row")
	}

	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) != len(grid[0]) {
			return nil, errors.Wrapf(ErrInvalidRules, "row %d has %d cells, want %d", y, len(grid[y]), len(grid[0]))
		}
	}

	b := NewBoard(len(grid[0]), len(grid))
	for x := 0; x < b.width; x++ {
		for y := b.height - 1; y >= 0; y-- {
			r := grid[y][x]
			if r == ' ' || r == '.' {
				continue
			}
			if y < b.height-1 && b.Get(x, y+1) == Empty {
				return nil, errors.Wrapf(ErrFloatingToken, "cell (%d,%d)", x, y)
			}
			b.cells[b.index(x, y)] = Token(r)
			b.moves++
		}
	}

	return b, nil
}
