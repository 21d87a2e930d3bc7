package engine

import (
	"iter"
	"slices"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// CheckerJumpRule jumps an enemy piece on a forward diagonal onto the
// empty square behind it, and may keep jumping from there. Every prefix of
// a chain is its own move. Directions are written from white's side.
type CheckerJumpRule struct {
	Directions []model.Offset
}

func CheckerJump() CheckerJumpRule {
	return CheckerJumpRule{Directions: []model.Offset{{X: -1, Y: 1}, {X: 1, Y: 1}}}
}

func (r CheckerJumpRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		if piece.IsNeutral() {
			return
		}
		directions := r.Directions
		if piece.BelongsTo(model.Black) {
			directions = make([]model.Offset, len(r.Directions))
			for i, dir := range r.Directions {
				directions[i] = dir.MirrorY()
			}
		}
		r.jump(board, pos, piece, directions, pos, nil, nil, yield)
	}
}

func (r CheckerJumpRule) jump(
	board *model.Board,
	origin model.Position,
	piece model.Piece,
	directions []model.Offset,
	from model.Position,
	path []model.IntermediateSquare,
	captures []model.MoveCapture,
	yield func(model.Move) bool,
) bool {
	for _, dir := range directions {
		over := from.Add(dir)
		land := over.Add(dir)
		if !board.IsEmpty(land) {
			continue
		}
		victim, ok := board.PeekPieceAt(over)
		if !ok || victim.IsFriendlyTo(piece) {
			continue
		}

		legPath := append(slices.Clone(path), model.IntermediateSquare{Position: over, IsCapture: true})
		legCaptures := append(slices.Clone(captures), model.MoveCapture{Piece: victim, Position: over})

		move := newMove(origin, land, piece)
		move.IntermediateSquares = legPath
		move.Captures = legCaptures
		move.ForcedPriority = model.ForcedCheckerCapture
		if !yield(move) {
			return false
		}

		waypoint := append(slices.Clone(legPath), model.IntermediateSquare{Position: land})
		if !r.jump(board, origin, piece, directions, land, waypoint, legCaptures, yield) {
			return false
		}
	}
	return true
}
