package engine

import (
	"iter"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// PieceRule turns candidate squares into moves for one piece.
type PieceRule interface {
	Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move]
}

func newMove(from, to model.Position, piece model.Piece) model.Move {
	return model.Move{From: from, To: to, Piece: piece}
}

func withCapture(move model.Move, victim model.Piece, at model.Position) model.Move {
	move.Captures = append(move.Captures, model.MoveCapture{Piece: victim, Position: at})
	return move
}

// CaptureOrEmptyRule moves to empty squares and captures anything that is
// not friendly. Each movement is consumed as its own sequence.
type CaptureOrEmptyRule struct {
	Movements []Movement
}

func CaptureOrEmpty(movements ...Movement) CaptureOrEmptyRule {
	return CaptureOrEmptyRule{Movements: movements}
}

func (r CaptureOrEmptyRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		for _, movement := range r.Movements {
			for dest := range movement.Evaluate(board, pos, piece) {
				move := newMove(pos, dest, piece)
				if occupant, occupied := board.PeekPieceAt(dest); occupied {
					if occupant.IsFriendlyTo(piece) {
						continue
					}
					move = withCapture(move, occupant, dest)
				}
				if !yield(move) {
					return
				}
			}
		}
	}
}

// NoCaptureRule only moves to empty squares and abandons a movement at
// its first occupied square.
type NoCaptureRule struct {
	Movements []Movement
}

func NoCapture(movements ...Movement) NoCaptureRule {
	return NoCaptureRule{Movements: movements}
}

func (r NoCaptureRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		for _, movement := range r.Movements {
			for dest := range movement.Evaluate(board, pos, piece) {
				if !board.IsEmpty(dest) {
					break
				}
				if !yield(newMove(pos, dest, piece)) {
					return
				}
			}
		}
	}
}

// CaptureOnlyRule only moves onto squares holding a capturable piece. A
// friendly occupant blocks the square rather than yielding a move.
type CaptureOnlyRule struct {
	Movements []Movement
}

func CaptureOnly(movements ...Movement) CaptureOnlyRule {
	return CaptureOnlyRule{Movements: movements}
}

func (r CaptureOnlyRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		for _, movement := range r.Movements {
			for dest := range movement.Evaluate(board, pos, piece) {
				occupant, occupied := board.PeekPieceAt(dest)
				if !occupied || occupant.IsFriendlyTo(piece) {
					continue
				}
				if !yield(withCapture(newMove(pos, dest, piece), occupant, dest)) {
					return
				}
			}
		}
	}
}

// PromotionRule expands every move of Rule that lands on the owner's last
// rank into one move per target type.
type PromotionRule struct {
	Rule    PieceRule
	Targets []model.PieceType
}

func Promotion(rule PieceRule, targets ...model.PieceType) PromotionRule {
	return PromotionRule{Rule: rule, Targets: targets}
}

func (r PromotionRule) Evaluate(board *model.Board, pos model.Position, piece model.Piece) iter.Seq[model.Move] {
	return func(yield func(model.Move) bool) {
		for move := range r.Rule.Evaluate(board, pos, piece) {
			if !isPromotionRank(board, move.To, piece) {
				if !yield(move) {
					return
				}
				continue
			}
			for _, target := range r.Targets {
				if !yield(move.WithPromotion(target)) {
					return
				}
			}
		}
	}
}

func isPromotionRank(board *model.Board, pos model.Position, piece model.Piece) bool {
	switch {
	case piece.BelongsTo(model.White):
		return pos.Y == board.Height()-1
	case piece.BelongsTo(model.Black):
		return pos.Y == 0
	}
	return false
}
