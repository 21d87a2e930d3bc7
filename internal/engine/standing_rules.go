package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// StandingRule contributes board-wide moves that no single piece owns.
type StandingRule interface {
	CandidateMoves(board *model.Board, color model.GameColor) iter.Seq[model.Move]
}

// Zone decides whether a square is special for color.
type Zone func(pos model.Position, color model.GameColor) bool

// SquareZone matches one square per color.
func SquareZone(white, black model.Position) Zone {
	return func(pos model.Position, color model.GameColor) bool {
		if color == model.White {
			return pos == white
		}
		return pos == black
	}
}

// OmnipotentPawnRule answers a capture of one of color's pieces inside
// Zone by removing whatever now stands there and spawning a pawn of color
// in its place.
type OmnipotentPawnRule struct {
	Zone Zone
}

func OmnipotentPawn(zone Zone) OmnipotentPawnRule {
	return OmnipotentPawnRule{Zone: zone}
}

func (r OmnipotentPawnRule) CandidateMoves(board *model.Board, color model.GameColor) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		last, ok := board.LastMove()
		if !ok || !r.Zone(last.To, color) {
			return
		}
		if !capturedPieceOf(last, color) {
			return
		}
		occupant, ok := board.PeekPieceAt(last.To)
		if !ok || occupant.BelongsTo(color) {
			return
		}

		move := withCapture(newMove(last.To, last.To, occupant), occupant, last.To)
		move.PieceSpawns = []model.PieceSpawn{{
			Type:     model.Pawn,
			Color:    model.ColorPtr(color),
			Position: last.To,
		}}
		move.SpecialMoveType = model.OmnipotentPawnSpawn
		yield(move)
	}
}

func capturedPieceOf(move model.Move, color model.GameColor) bool {
	for _, capture := range move.Captures {
		if capture.Piece.BelongsTo(color) {
			return true
		}
	}
	return false
}
