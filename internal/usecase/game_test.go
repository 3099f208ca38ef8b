package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
	"github.com/rocketscienceinc/checkers-backend/testing/suite"
)

func TestGameUseCase_NewGame(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a use case with custom markers
	useCase := NewGameUseCase(st.Logger, entity.Markers{Empty: ".", Player1: "w", Player2: "b"})

	// When: a new game is started
	board := useCase.NewGame(ctx)

	// Then: the opening is rendered with those markers
	lines := strings.Split(board, "\n")
	assert.Equal(t, " 0 | b | . | b | . | b | . | b | . |", lines[2])
	assert.Equal(t, " 7 | . | w | . | w | . | w | . | w |", lines[16])
	assert.Equal(t, board, useCase.Render(ctx))
}

func TestGameUseCase_MakeMove(t *testing.T) {
	t.Run("Legal move updates the board", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a started game
		useCase := NewGameUseCase(st.Logger, entity.DefaultMarkers)
		useCase.NewGame(ctx)

		// When: Player2 moves 2,0 to 3,1
		board, err := useCase.MakeMove(ctx, suite.At(2, 0), suite.At(3, 1))

		// Then: the returned board reflects the move
		require.NoError(t, err)
		lines := strings.Split(board, "\n")
		assert.Equal(t, " 3 |   | 2 |   |   |   |   |   |   |", lines[8])
		assert.Equal(t, board, useCase.Render(ctx))
	})

	t.Run("Illegal move is wrapped and leaves the board alone", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a started game
		useCase := NewGameUseCase(st.Logger, entity.DefaultMarkers)
		before := useCase.NewGame(ctx)

		// When: a piece tries to move onto its own side
		board, err := useCase.MakeMove(ctx, suite.At(1, 1), suite.At(2, 2))

		// Then: BlockedByPiece is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrBlockedByPiece)
		assert.Empty(t, board)
		assert.Equal(t, before, useCase.Render(ctx))
	})

	t.Run("Jump sequence captures a piece", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: Player2 advances a man into Player1's reach
		useCase := NewGameUseCase(st.Logger, entity.DefaultMarkers)
		useCase.NewGame(ctx)

		_, err := useCase.MakeMove(ctx, suite.At(2, 0), suite.At(3, 1))
		require.NoError(t, err)
		_, err = useCase.MakeMove(ctx, suite.At(3, 1), suite.At(4, 2))
		require.NoError(t, err)

		// When: Player1 jumps it
		board, err := useCase.MakeMove(ctx, suite.At(5, 3), suite.At(3, 1))

		// Then: 4,2 is empty and the jumper sits on 3,1
		require.NoError(t, err)
		lines := strings.Split(board, "\n")
		assert.Equal(t, " 3 |   | 1 |   |   |   |   |   |   |", lines[8])
		assert.Equal(t, " 4 |   |   |   |   |   |   |   |   |", lines[10])
		assert.Equal(t, " 5 |   | 1 |   |   |   | 1 |   | 1 |", lines[12])
	})

	t.Run("Move before a game is set up has no piece", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a use case with an empty board
		useCase := NewGameUseCase(st.Logger, entity.DefaultMarkers)

		// When: a move is attempted
		_, err := useCase.MakeMove(ctx, suite.At(2, 0), suite.At(3, 1))

		// Then: FromPieceMissing
		require.ErrorIs(t, err, apperror.ErrFromPieceMissing)
	})
}
