package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

var orthogonal = []model.Offset{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// IlVaticanoRule swaps two friendly partners standing Distance squares
// apart on a rank or file when every square between them holds an
// opposing pawn-like piece. The pawns are captured.
type IlVaticanoRule struct {
	Partner  model.PieceType
	Distance int
}

func IlVaticano() IlVaticanoRule {
	return IlVaticanoRule{Partner: model.Bishop, Distance: 3}
}

func (r IlVaticanoRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		if piece.IsNeutral() || r.Distance < 2 {
			return
		}
		for _, dir := range orthogonal {
			move, ok := r.swapToward(board, pos, piece, dir)
			if !ok {
				continue
			}
			if !yield(move) {
				return
			}
		}
	}
}

func (r IlVaticanoRule) swapToward(board *model.Board, pos model.Position, piece model.Piece, dir model.Offset) (model.Move, bool) {
	partnerPos := pos.Add(dir.Scale(r.Distance))
	partner, ok := board.PeekPieceAt(partnerPos)
	if !ok || partner.Type != r.Partner || !partner.IsFriendlyTo(piece) {
		return model.Move{}, false
	}

	move := newMove(pos, partnerPos, piece)
	for i := 1; i < r.Distance; i++ {
		square := pos.Add(dir.Scale(i))
		victim, ok := board.PeekPieceAt(square)
		if !ok || !victim.Type.IsPawnLike() || !victim.IsOpponentOf(piece) {
			return model.Move{}, false
		}
		move = withCapture(move, victim, square)
		move.TriggerSquares = append(move.TriggerSquares, square)
	}
	move.SideEffects = []model.MoveSideEffect{{From: partnerPos, To: pos, Piece: partner}}
	move.SpecialMoveType = model.IlVaticano
	return move, true
}
