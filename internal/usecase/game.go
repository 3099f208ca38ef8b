package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type GameUseCase interface {
	NewGame(ctx context.Context) string
	MakeMove(ctx context.Context, from, to entity.Coordinate) (string, error)
	Render(ctx context.Context) string
}

// gameUseCase - owns a single board and serializes every call on it.
type gameUseCase struct {
	logger  *slog.Logger
	markers entity.Markers

	mu    sync.Mutex
	board *entity.Board
}

func NewGameUseCase(logger *slog.Logger, markers entity.Markers) GameUseCase {
	return &gameUseCase{
		logger:  logger.With("component", "game"),
		markers: markers,
		board:   entity.NewBoard(),
	}
}

// NewGame - sets the board up for a new game and returns it rendered.
func (that *gameUseCase) NewGame(ctx context.Context) string {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board.Setup()
	that.logger.InfoContext(ctx, "new game started",
		"player1", that.board.Count(entity.Player1),
		"player2", that.board.Count(entity.Player2))

	return that.board.RenderWith(that.markers)
}

// MakeMove - moves a piece and returns the rendered board. Illegal moves are
// returned as errors wrapping the apperror sentinels; the board is unchanged.
func (that *gameUseCase) MakeMove(ctx context.Context, from, to entity.Coordinate) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeMove", "from", from.String(), "to", to.String())

	piece, _ := that.board.PieceAt(from)
	_, isJump := from.Between(to)

	if err := that.board.MovePiece(from, to); err != nil {
		log.InfoContext(ctx, "move rejected", "error", err)
		return "", fmt.Errorf("failed to move piece: %w", err)
	}

	if isJump {
		log.InfoContext(ctx, "piece captured", "player", piece.Owner.String(),
			"remaining", that.board.Count(piece.Owner.Opponent()))
	} else {
		log.DebugContext(ctx, "piece moved", "player", piece.Owner.String())
	}

	return that.board.RenderWith(that.markers), nil
}

func (that *gameUseCase) Render(_ context.Context) string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.RenderWith(that.markers)
}
