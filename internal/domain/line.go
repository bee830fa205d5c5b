package domain

// Line is the sequence of cells visited while walking the board in one
// direction.
type Line []Token

// Direction is a step vector in (column, row) space.
type Direction struct {
	DX, DY int
}

var (
	Down      = Direction{0, 1}
	Right     = Direction{1, 0}
	DownRight = Direction{1, 1}
	DownLeft  = Direction{-1, 1}
)

// Extract walks from (x, y) by (dx, dy) and collects up to length cells. The
// walk stops at the grid edge.
func Extract(b *Board, x, y, dx, dy, length int) Line {
	line := make(Line, 0, length)
	for i := 0; i < length && b.InBounds(x, y); i++ {
		line = append(line, b.Get(x, y))
		x += dx
		y += dy
	}
	return line
}

// RunOf returns the first player whose token appears n times in a row on the
// line. Empty cells and tokens outside players never count, and n < 1 never
// matches.
func (l Line) RunOf(players PlayerSet, n int) (Token, bool) {
	if n < 1 {
		return Empty, false
	}
	count := 0
	prev := Empty
	for _, t := range l {
		if t == Empty || !players.Contains(t) {
			count = 0
			prev = Empty
			continue
		}
		if t == prev {
			count++
		} else {
			count = 1
			prev = t
		}
		if count >= n {
			return t, true
		}
	}
	return Empty, false
}

func (l Line) String() string {
	rs := make([]rune, len(l))
	for i, t := range l {
		rs[i] = []rune(t.String())[0]
	}
	return string(rs)
}
