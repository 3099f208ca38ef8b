package apperror

import "errors"

var (
	ErrFromPieceMissing  = errors.New("no piece at source coordinate")
	ErrBlockedByPiece    = errors.New("destination is blocked by a piece")
	ErrWrongDirection    = errors.New("piece cannot move in that direction")
	ErrIsNotCattyCorner  = errors.New("destination is not catty-corner to source")
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrUnknownPlayer     = errors.New("piece owner is not a player")
)
