package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

const helpText = `commands:
  new                         start a new game
  move <row,col> <row,col>    move a piece, e.g. move 2,0 3,1
  show                        print the board
  help                        print this help
  quit | exit                 leave
`

func (that *Server) handleNewGame(ctx context.Context, _ *Command, writer io.Writer) error {
	board := that.uGame.NewGame(ctx)

	return writeBoard(writer, board)
}

// handleMove - illegal moves are reported to the player, not returned.
func (that *Server) handleMove(ctx context.Context, cmd *Command, writer io.Writer) error {
	if len(cmd.Args) != 2 {
		_, err := fmt.Fprintln(writer, "usage: move <row,col> <row,col>")
		return err
	}

	from, err := entity.ParseCoordinate(cmd.Args[0])
	if err != nil {
		_, err = fmt.Fprintf(writer, "invalid move: %v\n", err)
		return err
	}

	to, err := entity.ParseCoordinate(cmd.Args[1])
	if err != nil {
		_, err = fmt.Fprintf(writer, "invalid move: %v\n", err)
		return err
	}

	board, err := that.uGame.MakeMove(ctx, from, to)
	if err != nil {
		_, err = fmt.Fprintf(writer, "illegal move %s -> %s: %v\n", from, to, err)
		return err
	}

	return writeBoard(writer, board)
}

func (that *Server) handleShow(ctx context.Context, _ *Command, writer io.Writer) error {
	return writeBoard(writer, that.uGame.Render(ctx))
}

func (that *Server) handleHelp(_ context.Context, _ *Command, writer io.Writer) error {
	_, err := io.WriteString(writer, helpText)
	return err
}

func (that *Server) handleQuit(_ context.Context, _ *Command, _ io.Writer) error {
	return errQuit
}

func writeBoard(writer io.Writer, board string) error {
	if _, err := io.WriteString(writer, board); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
