package entity

import "strconv"

type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that Player) IsValid() bool {
	return that == Player1 || that == Player2
}

func (that Player) String() string {
	return strconv.Itoa(int(that))
}

type Piece struct {
	Owner Player `json:"owner"`
	King  bool   `json:"king,omitempty"`
}
