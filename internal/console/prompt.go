package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/pkg/errors"
)

var ErrNoInput = errors.New("no more input")

// Prompter asks the active player for a column until the answer names a
// column that exists and still has room.
type Prompter struct {
	out   io.Writer
	in    io.Reader
	lines chan inputLine
	done  chan struct{}
	once  sync.Once
	stop  sync.Once
}

type inputLine struct {
	text string
	err  error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan inputLine), done: make(chan struct{})}
}

// Close stops the reader goroutine once nobody is waiting for input.
func (p *Prompter) Close() {
	p.stop.Do(func() { close(p.done) })
}

// scan feeds input lines to the prompter until the reader is exhausted or
// fails. A read error is delivered before the channel closes.
func (p *Prompter) scan() {
	defer close(p.lines)

	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		if !p.deliver(inputLine{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		p.deliver(inputLine{err: errors.Wrap(err, "failed to read input")})
	}
}

func (p *Prompter) deliver(l inputLine) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	p.once.Do(func() { go p.scan() })

	select {
	case <-p.done:
		return "", ErrNoInput
	default:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrNoInput
	case line, ok := <-p.lines:
		if !ok {
			return "", ErrNoInput
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

// NextColumn returns the 0-based column chosen by player.
func (p *Prompter) NextColumn(ctx context.Context, b *domain.Board, player domain.Token) (int, error) {
	prompt := fmt.Sprintf("%s please choose a column from 1-%d: ", player, b.Width())
	for {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return -1, err
		}

		line, err := p.readLine(ctx)
		if err != nil {
			return -1, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > b.Width() {
			prompt = fmt.Sprintf("%s please choose an appropriate input: ", player)
			continue
		}
		if b.ColumnFull(choice - 1) {
			prompt = fmt.Sprintf("%s please choose an available column: ", player)
			continue
		}
		return choice - 1, nil
	}
}
