package domain

// lineStart is where a scan begins, the direction it walks and how many
// cells the line has.
type lineStart struct {
	x, y   int
	dir    Direction
	length int
}

// WinDetector scans a whole board for WinLength identical player tokens in
// a row, in any of the four orientations.
type WinDetector struct {
	WinLength int
	Players   PlayerSet
}

func NewWinDetector(rules Rules) WinDetector {
	return WinDetector{WinLength: rules.WinLength, Players: rules.Players}
}

// HasWon reports whether any player has a winning run on b.
func (d WinDetector) HasWon(b *Board) bool {
	_, ok := d.Winner(b)
	return ok
}

// Winner returns the token of the first winning run found. A detector
// without a positive WinLength never reports a win.
func (d WinDetector) Winner(b *Board) (Token, bool) {
	if d.WinLength < 1 {
		return Empty, false
	}
	for _, s := range enumerateLines(b.Width(), b.Height()) {
		if s.length < d.WinLength {
			continue
		}
		line := Extract(b, s.x, s.y, s.dir.DX, s.dir.DY, s.length)
		if t, ok := line.RunOf(d.Players, d.WinLength); ok {
			return t, true
		}
	}
	return Empty, false
}

// enumerateLines lists every maximal line of a width x height grid once:
// columns, rows, then both diagonal families. Each diagonal family starts on
// the top edge and continues down the side edge from row 1.
func enumerateLines(width, height int) []lineStart {
	starts := make([]lineStart, 0, 2*(width+height)+width+height)

	for x := 0; x < width; x++ {
		starts = append(starts, lineStart{x: x, y: 0, dir: Down, length: height})
	}
	for y := 0; y < height; y++ {
		starts = append(starts, lineStart{x: 0, y: y, dir: Right, length: width})
	}

	// "\" diagonals
	for x := 0; x < width; x++ {
		starts = append(starts, lineStart{x: x, y: 0, dir: DownRight, length: min(width-x, height)})
	}
	for y := 1; y < height; y++ {
		starts = append(starts, lineStart{x: 0, y: y, dir: DownRight, length: min(height-y, width)})
	}

	// "/" diagonals
	for x := width - 1; x >= 0; x-- {
		starts = append(starts, lineStart{x: x, y: 0, dir: DownLeft, length: min(x+1, height)})
	}
	for y := 1; y < height; y++ {
		starts = append(starts, lineStart{x: width - 1, y: y, dir: DownLeft, length: min(height-y, width)})
	}

	return starts
}
