package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// FusionRule lets a piece land on a friendly Partner and merge with it
// into Result. The partner is recorded as a capture.
type FusionRule struct {
	Movements []Movement
	Partner   model.PieceType
	Result    model.PieceType
}

func Fusion(partner, result model.PieceType, movements ...Movement) FusionRule {
	return FusionRule{Movements: movements, Partner: partner, Result: result}
}

func (r FusionRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		if piece.IsNeutral() {
			return
		}
		for _, movement := range r.Movements {
			for dest := range movement.Evaluate(board, pos, piece) {
				partner, ok := board.PeekPieceAt(dest)
				if !ok || partner.Type != r.Partner || !partner.IsFriendlyTo(piece) {
					continue
				}
				move := withCapture(newMove(pos, dest, piece), partner, dest).WithPromotion(r.Result)
				move.SpecialMoveType = model.KnooklearFusion
				if !yield(move) {
					return
				}
			}
		}
	}
}
