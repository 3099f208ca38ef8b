package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	NewGame(ctx context.Context) string
	MakeMove(ctx context.Context, from, to entity.Coordinate) (string, error)
	Render(ctx context.Context) string
}

// Command - one line of user input split into an action and its arguments.
type Command struct {
	Action string
	Args   []string
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
	prompt string

	handlers map[string]func(ctx context.Context, cmd *Command, writer io.Writer) error
}

func New(logger *slog.Logger, uGame uGame, prompt string) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		prompt: prompt,

		handlers: make(map[string]func(context.Context, *Command, io.Writer) error),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleMove
	server.handlers["show"] = server.handleShow
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Serve - reads commands line by line until EOF, a quit command or ctx is done.
func (that *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Serve")

	// stops the reader goroutine when Serve returns before EOF
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if _, err := io.WriteString(writer, that.prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.scanResult(scanErr)
			}

			cmd, ok := parseCommand(line)
			if !ok {
				continue
			}

			err := that.dispatch(ctx, cmd, writer)
			if errors.Is(err, errQuit) {
				log.Info("quit requested")
				return nil
			}

			if err != nil {
				log.Error("error processing command", "action", cmd.Action, "error", err)
			}
		}
	}
}

func (that *Server) scanResult(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}

func (that *Server) dispatch(ctx context.Context, cmd *Command, writer io.Writer) error {
	handler, ok := that.handlers[cmd.Action]
	if !ok {
		_, err := fmt.Fprintf(writer, "unknown command %q, type help for the list of commands\n", cmd.Action)
		return err
	}

	return handler(ctx, cmd, writer)
}

func parseCommand(line string) (*Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	return &Command{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}
