package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

type castleDirection struct {
	offset         model.Offset
	special        model.SpecialMoveType
	partnerUnmoved bool
}

var castleDirections = []castleDirection{
	{offset: model.Offset{X: 1, Y: 0}, special: model.KingsideCastle, partnerUnmoved: true},
	{offset: model.Offset{X: -1, Y: 0}, special: model.QueensideCastle, partnerUnmoved: true},
	{offset: model.Offset{X: 0, Y: 1}, special: model.VerticalCastle},
	{offset: model.Offset{X: 0, Y: -1}, special: model.VerticalCastle},
}

// CastleRule moves an unmoved king two squares toward a friendly partner
// with nothing in between, and hops the partner onto the square the king
// crossed. Horizontal castles need an unmoved partner, vertical ones do
// not.
type CastleRule struct {
	Partner model.PieceType
}

func Castle() CastleRule {
	return CastleRule{Partner: model.Rook}
}

func (r CastleRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		if piece.TimesMoved > 0 || piece.IsNeutral() {
			return
		}
		for _, direction := range castleDirections {
			move, ok := r.castleToward(board, pos, piece, direction)
			if !ok {
				continue
			}
			if !yield(move) {
				return
			}
		}
	}
}

func (r CastleRule) castleToward(board *model.Board, pos model.Position, piece model.Piece, direction castleDirection) (model.Move, bool) {
	var path []model.Position
	partnerPos := pos.Add(direction.offset)
	for board.IsEmpty(partnerPos) {
		path = append(path, partnerPos)
		partnerPos = partnerPos.Add(direction.offset)
	}
	partner, ok := board.PeekPieceAt(partnerPos)
	if !ok || partner.Type != r.Partner || !partner.IsFriendlyTo(piece) {
		return model.Move{}, false
	}
	if direction.partnerUnmoved && partner.TimesMoved > 0 {
		return model.Move{}, false
	}
	// the partner has to land on a square the king gives up
	if len(path) < 2 {
		return model.Move{}, false
	}

	move := newMove(pos, path[1], piece)
	move.SpecialMoveType = direction.special
	move.SideEffects = []model.MoveSideEffect{{From: partnerPos, To: path[0], Piece: partner}}
	move.TriggerSquares = append([]model.Position{partnerPos}, path[2:]...)
	return move, true
}
