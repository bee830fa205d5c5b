package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect-n/internal/domain"
)

// Renderer prints boards and end-of-game messages.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RenderBoard prints the board framed by pipes with a dashed base, top row
// first.
func (r *Renderer) RenderBoard(b *domain.Board) error {
	_, err := io.WriteString(r.w, "\n"+FormatBoard(b)+"\n")
	return err
}

func (r *Renderer) Congratulate(player domain.Token) error {
	_, err := fmt.Fprintf(r.w, "Congratulations! %s wins!\n", player)
	return err
}

func (r *Renderer) Draw() error {
	_, err := fmt.Fprintln(r.w, "Game ended in a draw.")
	return err
}

// FormatBoard returns the text layout of b:
//
//	Board:
//	| | | | | | | |
//	|X|O| | | | | |
//	---------------
func FormatBoard(b *domain.Board) string {
	var sb strings.Builder

	fmt.Fprintln(&sb, "Board:")
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			fmt.Fprintf(&sb, "|%s", b.Get(x, y))
		}
		fmt.Fprintln(&sb, "|")
	}
	fmt.Fprintln(&sb, strings.Repeat("-", b.Width()*2+1))
	return sb.String()
}
