package model

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrPieceNotFound = errors.New("piece not found")
	ErrOutOfBounds   = errors.New("position out of bounds")
)

// Board is the grid of optional pieces plus the ordered history of applied
// moves. It is not safe for concurrent use; one game owns one board.
type Board struct {
	width   int
	height  int
	squares [][]*Piece
	history []Move
}

func NewBoard(width, height int) *Board {
	board := &Board{width: width, height: height}
	for y := 0; y < height; y++ {
		board.squares = append(board.squares, make([]*Piece, width))
	}
	return board
}

func NewDefaultBoard() *Board {
	return NewBoard(DefaultBoardWidth, DefaultBoardHeight)
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsWithinBoundaries(pos Position) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

func (b *Board) IsEmpty(pos Position) bool {
	return b.IsWithinBoundaries(pos) && b.squares[pos.Y][pos.X] == nil
}

// PeekPieceAt returns a copy of the piece on pos. Out-of-bounds squares
// read as empty.
func (b *Board) PeekPieceAt(pos Position) (Piece, bool) {
	if !b.IsWithinBoundaries(pos) {
		return Piece{}, false
	}
	piece := b.squares[pos.Y][pos.X]
	if piece == nil {
		return Piece{}, false
	}
	return piece.clone(), true
}

// PlacePiece seeds a square during setup. It records no history and leaves
// TimesMoved untouched.
func (b *Board) PlacePiece(pos Position, piece Piece) error {
	if !b.IsWithinBoundaries(pos) {
		return fmt.Errorf("place %s at %s: %w", piece, pos, ErrOutOfBounds)
	}
	placed := piece.clone()
	b.squares[pos.Y][pos.X] = &placed
	return nil
}

// ApplyMove is the only gameplay mutation. The moved piece is lifted,
// captures are removed, side effects relocated, the moved piece is placed
// on the destination and finally spawns are placed, so a spawn may take
// the destination square.
func (b *Board) ApplyMove(move Move) error {
	if !b.IsWithinBoundaries(move.From) || !b.IsWithinBoundaries(move.To) {
		return fmt.Errorf("apply %s: %w", move.Key(), ErrOutOfBounds)
	}
	moved := b.squares[move.From.Y][move.From.X]
	if moved == nil {
		return fmt.Errorf("apply %s: no piece at %s: %w", move.Key(), move.From, ErrPieceNotFound)
	}
	b.squares[move.From.Y][move.From.X] = nil

	for _, capture := range move.Captures {
		if b.IsWithinBoundaries(capture.Position) {
			b.squares[capture.Position.Y][capture.Position.X] = nil
		}
	}

	// lift every side effect before placing any so pieces can swap
	relocated := make([]*Piece, len(move.SideEffects))
	for i, effect := range move.SideEffects {
		if !b.IsWithinBoundaries(effect.From) {
			continue
		}
		relocated[i] = b.squares[effect.From.Y][effect.From.X]
		b.squares[effect.From.Y][effect.From.X] = nil
	}
	for i, effect := range move.SideEffects {
		if relocated[i] == nil || !b.IsWithinBoundaries(effect.To) {
			continue
		}
		relocated[i].TimesMoved++
		b.squares[effect.To.Y][effect.To.X] = relocated[i]
	}

	moved.TimesMoved++
	if move.PromotesTo != nil {
		moved.Type = *move.PromotesTo
	}
	b.squares[move.To.Y][move.To.X] = moved

	for _, spawn := range move.PieceSpawns {
		if !b.IsWithinBoundaries(spawn.Position) {
			continue
		}
		spawned := Piece{Type: spawn.Type}
		if spawn.Color != nil {
			spawned.Color = ColorPtr(*spawn.Color)
		}
		b.squares[spawn.Position.Y][spawn.Position.X] = &spawned
	}

	b.history = append(b.history, move)
	return nil
}

func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

func (b *Board) History() []Move {
	history := make([]Move, len(b.history))
	copy(history, b.history)
	return history
}

// Pieces yields every occupied square in row-major order, rank 1 first.
func (b *Board) Pieces() iter.Seq2[Position, Piece] {
	return func(yield func(Position, Piece) bool) {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				piece := b.squares[y][x]
				if piece == nil {
					continue
				}
				if !yield(Position{X: x, Y: y}, piece.clone()) {
					return
				}
			}
		}
	}
}
