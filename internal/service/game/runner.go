package game

import (
	"context"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ColumnSource supplies the column the active player wants to play.
type ColumnSource interface {
	NextColumn(ctx context.Context, b *domain.Board, player domain.Token) (int, error)
}

// Display shows the board and the end-of-game message.
type Display interface {
	RenderBoard(b *domain.Board) error
	Congratulate(player domain.Token) error
	Draw() error
}

type Result struct {
	Winner domain.Token
	Draw   bool
	Moves  int
}

// Run drives s until somebody wins or the board fills up. A column the rules
// reject is reported and the source is asked again.
func Run(ctx context.Context, s *Session, src ColumnSource, out Display) (Result, error) {
	for !s.IsFinished() {
		board := s.Board()
		if err := out.RenderBoard(board); err != nil {
			return Result{}, errors.Wrap(err, "failed to render board")
		}

		player := s.CurrentPlayer()
		column, err := src.NextColumn(ctx, board, player)
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to get a column for %s", player)
		}

		if _, err := s.Play(column); err != nil {
			if errors.Is(err, domain.ErrInvalidColumn) || errors.Is(err, domain.ErrColumnFull) {
				s.log.Warn("move rejected",
					zap.String("game_id", s.GameID),
					zap.Stringer("player", player),
					zap.Int("column", column),
					zap.Error(err),
				)
				continue
			}
			return Result{}, err
		}
	}

	if err := out.RenderBoard(s.Board()); err != nil {
		return Result{}, errors.Wrap(err, "failed to render board")
	}

	snap := s.Snapshot()
	result := Result{Moves: snap.MoveCount}
	if snap.Status == domain.StatusWon {
		result.Winner = s.Winner()
		return result, out.Congratulate(result.Winner)
	}

	result.Draw = true
	return result, out.Draw()
}
