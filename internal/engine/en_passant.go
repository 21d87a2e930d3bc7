package engine

import (
	"iter"
	"slices"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// EnPassantRule captures an opposing piece that just advanced two or more
// squares along a file. Every square it passed through is a candidate; the
// capture is taken where the passing piece now stands.
type EnPassantRule struct {
	Movements []Movement
	Eligible  []model.PieceType
}

func EnPassant(eligible []model.PieceType, movements ...Movement) EnPassantRule {
	return EnPassantRule{Movements: movements, Eligible: eligible}
}

func (r EnPassantRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		last, ok := board.LastMove()
		if !ok || !slices.Contains(r.Eligible, last.Piece.Type) || !last.Piece.IsOpponentOf(piece) {
			return
		}
		if last.From.X != last.To.X || abs(last.To.Y-last.From.Y) < 2 {
			return
		}
		passer, ok := board.PeekPieceAt(last.To)
		if !ok || !passer.IsOpponentOf(piece) {
			return
		}

		for _, movement := range r.Movements {
			for dest := range movement.Evaluate(board, pos, piece) {
				if dest.X != last.To.X || !strictlyBetween(dest.Y, last.From.Y, last.To.Y) {
					continue
				}
				if !board.IsEmpty(dest) {
					continue
				}
				move := withCapture(newMove(pos, dest, piece), passer, last.To)
				move.SpecialMoveType = model.EnPassant
				move.ForcedPriority = model.ForcedEnPassant
				if !yield(move) {
					return
				}
			}
		}
	}
}

func strictlyBetween(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return v > a && v < b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
