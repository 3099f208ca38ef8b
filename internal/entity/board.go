package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
)

// rows each side fills at the start of a game.
const startingRows = 3

// Markers - symbols used by RenderWith for each kind of cell.
type Markers struct {
	Empty   string
	Player1 string
	Player2 string
}

var DefaultMarkers = Markers{
	Empty:   " ",
	Player1: Player1.String(),
	Player2: Player2.String(),
}

// Board - an 8x8 grid of optional pieces. The zero value is an empty board.
// Board does no locking; callers serialize access per instance.
type Board struct {
	cells [BoardSize][BoardSize]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

// Setup - replaces the board contents with the standard opening: Player2 on
// rows 0-2 and Player1 on rows 5-7, on cells where row+column is even.
func (that *Board) Setup() {
	that.cells = [BoardSize][BoardSize]*Piece{}

	for column := 0; column < BoardSize; column++ {
		for row := 0; row < startingRows; row++ {
			if (row+column)%2 == 0 {
				that.cells[row][column] = &Piece{Owner: Player2}
			}
		}

		for row := BoardSize - startingRows; row < BoardSize; row++ {
			if (row+column)%2 == 0 {
				that.cells[row][column] = &Piece{Owner: Player1}
			}
		}
	}
}

// PieceAt - returns a copy of the piece at c, ok is false for empty or
// off-board cells.
func (that *Board) PieceAt(c Coordinate) (Piece, bool) {
	if !c.IsValid() {
		return Piece{}, false
	}

	piece := that.cells[c.Row][c.Column]
	if piece == nil {
		return Piece{}, false
	}

	return *piece, true
}

// Place - puts a piece on c, replacing whatever was there. The owner must be
// Player1 or Player2.
func (that *Board) Place(c Coordinate, piece Piece) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCoordinate, c)
	}

	if !piece.Owner.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, int(piece.Owner))
	}

	that.cells[c.Row][c.Column] = &piece

	return nil
}

func (that *Board) Remove(c Coordinate) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCoordinate, c)
	}

	that.cells[c.Row][c.Column] = nil

	return nil
}

// Count - number of pieces owned by player.
func (that *Board) Count(player Player) int {
	count := 0
	for _, row := range that.cells {
		for _, piece := range row {
			if piece != nil && piece.Owner == player {
				count++
			}
		}
	}

	return count
}

// MovePiece - moves the piece at from to to. A rejected move leaves the board
// untouched; a jump also removes the piece jumped over.
func (that *Board) MovePiece(from, to Coordinate) error {
	if err := that.ValidateMove(from, to); err != nil {
		return err
	}

	that.cells[to.Row][to.Column] = that.cells[from.Row][from.Column]
	that.cells[from.Row][from.Column] = nil

	if jumped, ok := from.Between(to); ok {
		that.cells[jumped.Row][jumped.Column] = nil
	}

	return nil
}

// ValidateMove - checks whether moving the piece at from to to is legal,
// regardless of whose turn it is. Checks run in order and stop at the first
// failure:
//   - from holds a piece
//   - to is empty
//   - a piece that is not a king moves toward the opponent
//   - to is catty-corner to from, or two cells away diagonally with an
//     opposing piece in between
func (that *Board) ValidateMove(from, to Coordinate) error {
	if !from.IsValid() {
		return fmt.Errorf("%w: from %s", apperror.ErrInvalidCoordinate, from)
	}

	if !to.IsValid() {
		return fmt.Errorf("%w: to %s", apperror.ErrInvalidCoordinate, to)
	}

	piece, ok := that.PieceAt(from)
	if !ok {
		return apperror.ErrFromPieceMissing
	}

	if _, ok = that.PieceAt(to); ok {
		return apperror.ErrBlockedByPiece
	}

	if !piece.King && !isForward(piece.Owner, from, to) {
		return apperror.ErrWrongDirection
	}

	if from.IsDiagonallyAdjacent(to) {
		return nil
	}

	if that.isCapture(piece.Owner, from, to) {
		return nil
	}

	return apperror.ErrIsNotCattyCorner
}

// isCapture - to is a jump away from from, over a piece of the other player.
func (that *Board) isCapture(owner Player, from, to Coordinate) bool {
	jumped, ok := from.Between(to)
	if !ok {
		return false
	}

	target, ok := that.PieceAt(jumped)

	return ok && target.Owner == owner.Opponent()
}

// Player1 advances toward row 0, Player2 toward row 7.
func isForward(owner Player, from, to Coordinate) bool {
	if owner == Player1 {
		return to.Row < from.Row
	}
	return to.Row > from.Row
}

// Render - the board drawn with DefaultMarkers.
func (that *Board) Render() string {
	return that.RenderWith(DefaultMarkers)
}

// RenderWith - draws the board as a grid with row and column indices.
func (that *Board) RenderWith(markers Markers) string {
	const separator = "   ---------------------------------\n"

	var sb strings.Builder

	sb.WriteString("    ")
	for column := 0; column < BoardSize; column++ {
		fmt.Fprintf(&sb, " %d  ", column)
	}
	sb.WriteString("\n")
	sb.WriteString(separator)

	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, " %d |", row)
		for column := 0; column < BoardSize; column++ {
			fmt.Fprintf(&sb, " %s |", markers.marker(that.cells[row][column]))
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}

	return sb.String()
}

func (that Markers) marker(piece *Piece) string {
	switch {
	case piece == nil:
		return that.Empty
	case piece.Owner == Player1:
		return that.Player1
	default:
		return that.Player2
	}
}
