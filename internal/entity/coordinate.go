package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
)

// BoardSize - number of rows and columns on the board.
const BoardSize = 8

// Coordinate - a (row, column) cell address. Components are signed so that
// differences near the edges of the board never wrap.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewCoordinate(row, column int) (Coordinate, error) {
	c := Coordinate{Row: row, Column: column}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCoordinate, row, column)
	}

	return c, nil
}

// ParseCoordinate - parses "row,column", e.g. "2,0".
func ParseCoordinate(s string) (Coordinate, error) {
	rowStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad row %q", apperror.ErrInvalidCoordinate, rowStr)
	}

	column, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad column %q", apperror.ErrInvalidCoordinate, colStr)
	}

	return NewCoordinate(row, column)
}

func (that Coordinate) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Column >= 0 && that.Column < BoardSize
}

// IsDiagonallyAdjacent - reports whether other is catty-corner to this cell.
func (that Coordinate) IsDiagonallyAdjacent(other Coordinate) bool {
	return abs(that.Row-other.Row) == 1 && abs(that.Column-other.Column) == 1
}

// Between - returns the cell a jump from this cell to other passes over.
// ok is false unless other is exactly two diagonal steps away.
func (that Coordinate) Between(other Coordinate) (Coordinate, bool) {
	dRow, dColumn := other.Row-that.Row, other.Column-that.Column
	if abs(dRow) != 2 || abs(dColumn) != 2 {
		return Coordinate{}, false
	}

	return Coordinate{Row: that.Row + dRow/2, Column: that.Column + dColumn/2}, true
}

func (that Coordinate) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Column)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
