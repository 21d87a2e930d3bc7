// Package engine generates legal moves for the chess2 variant. Movement
// primitives produce candidate squares, piece rules turn them into moves,
// standing rules add board-wide moves, and Engine filters the union down
// to the legal set.
package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// Movement yields candidate destinations for piece standing on pos. Every
// call produces a fresh sequence.
type Movement interface {
	Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Position]
}

// Predicate inspects the board around a piece.
type Predicate func(board *model.Board, pos model.Position, piece model.Piece) bool

type StepMovement struct {
	Offset model.Offset
}

func Step(offset model.Offset) StepMovement {
	return StepMovement{Offset: offset}
}

func (s StepMovement) Evaluate(board *model.Board, pos model.Position, _ model.Piece) iter.Seq[model.Position] {
	return func(yield func(model.Position) bool) {
		target := pos.Add(s.Offset)
		if board.IsWithinBoundaries(target) {
			yield(target)
		}
	}
}

// SlideMovement repeats Offset until it leaves the board or hits a piece.
// The occupied square is yielded. MaxSteps of zero means no cap.
type SlideMovement struct {
	Offset   model.Offset
	MaxSteps int
}

func Slide(offset model.Offset) SlideMovement {
	return SlideMovement{Offset: offset}
}

func SlideN(offset model.Offset, maxSteps int) SlideMovement {
	return SlideMovement{Offset: offset, MaxSteps: maxSteps}
}

func (s SlideMovement) Evaluate(board *model.Board, pos model.Position, _ model.Piece) iter.Seq[model.Position] {
	return func(yield func(model.Position) bool) {
		if s.Offset == (model.Offset{}) {
			return
		}
		target := pos
		for n := 0; s.MaxSteps == 0 || n < s.MaxSteps; n++ {
			target = target.Add(s.Offset)
			if !board.IsWithinBoundaries(target) {
				return
			}
			if !yield(target) {
				return
			}
			if !board.IsEmpty(target) {
				return
			}
		}
	}
}

// ConditionalMovement delegates to one branch chosen by Predicate. A nil
// branch yields nothing.
type ConditionalMovement struct {
	Predicate Predicate
	WhenTrue  Movement
	WhenFalse Movement
}

func Conditional(predicate Predicate, whenTrue, whenFalse Movement) ConditionalMovement {
	return ConditionalMovement{Predicate: predicate, WhenTrue: whenTrue, WhenFalse: whenFalse}
}

func (c ConditionalMovement) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Position] {
	branch := c.WhenFalse
	if c.Predicate(board, pos, piece) {
		branch = c.WhenTrue
	}
	if branch == nil {
		return func(func(model.Position) bool) {}
	}
	return branch.Evaluate(board, pos, piece)
}

func HasNeverMoved(_ *model.Board, _ model.Position, piece model.Piece) bool {
	return piece.TimesMoved == 0
}

func IsOwnedBy(color model.GameColor) Predicate {
	return func(_ *model.Board, _ model.Position, piece model.Piece) bool {
		return piece.BelongsTo(color)
	}
}

// ByColor picks a movement by the owner of the piece. Neutral pieces get
// the black branch.
func ByColor(white, black Movement) Movement {
	return Conditional(IsOwnedBy(model.White), white, black)
}

// forwardStep orients an offset written from white's point of view.
func forwardStep(offset model.Offset) Movement {
	return ByColor(Step(offset), Step(offset.MirrorY()))
}

func forwardSlideN(offset model.Offset, maxSteps int) Movement {
	return ByColor(SlideN(offset, maxSteps), SlideN(offset.MirrorY(), maxSteps))
}

func steps(offsets ...model.Offset) []Movement {
	movements := make([]Movement, len(offsets))
	for i, offset := range offsets {
		movements[i] = Step(offset)
	}
	return movements
}

func slides(offsets ...model.Offset) []Movement {
	movements := make([]Movement, len(offsets))
	for i, offset := range offsets {
		movements[i] = Slide(offset)
	}
	return movements
}
