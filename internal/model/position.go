package model

import (
	"fmt"
	"strconv"
)

const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 10
)

type Offset struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (o Offset) Scale(n int) Offset {
	return Offset{X: o.X * n, Y: o.Y * n}
}

func (o Offset) MirrorY() Offset {
	return Offset{X: o.X, Y: -o.Y}
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Sub(o Offset) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// OffsetTo returns the vector that takes p to other.
func (p Position) OffsetTo(other Position) Offset {
	return Offset{X: other.X - p.X, Y: other.Y - p.Y}
}

// Square renders the position in algebraic form. Y=0 is rank 1.
func (p Position) Square() string {
	return p.File() + p.Rank()
}

func (p Position) File() string {
	return fmt.Sprintf("%c", p.X+'a')
}

func (p Position) Rank() string {
	return strconv.Itoa(p.Y + 1)
}

func (p Position) String() string {
	return p.Square()
}

// ParseSquare is the inverse of Position.Square.
func ParseSquare(square string) (Position, bool) {
	if len(square) < 2 {
		return Position{}, false
	}
	file := square[0]
	if file < 'a' || file > 'z' {
		return Position{}, false
	}
	rank, err := strconv.Atoi(square[1:])
	if err != nil || rank < 1 {
		return Position{}, false
	}
	return Position{X: int(file - 'a'), Y: rank - 1}, true
}

// MustParseSquare panics on malformed input. Meant for tables and tests.
func MustParseSquare(square string) Position {
	pos, ok := ParseSquare(square)
	if !ok {
		panic(fmt.Sprintf("invalid square %q", square))
	}
	return pos
}
