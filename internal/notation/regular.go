package notation

import (
	"strings"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// Regular renders a move as piece letter, disambiguation, waypoints and
// destination. Pawn-like pieces drop the letter and prefix the origin file
// when they capture. Captures that are neither jumped nor on the
// destination are listed at the end.
func Regular(move model.Move, legalMoves []model.Move) string {
	var path strings.Builder
	jumped := make(map[model.Position]bool)
	reachedByCapture := false
	for _, intermediate := range move.IntermediateSquares {
		if intermediate.IsCapture {
			jumped[intermediate.Position] = true
			reachedByCapture = true
			continue
		}
		if reachedByCapture {
			path.WriteByte('x')
		}
		path.WriteString(intermediate.Position.Square())
		reachedByCapture = false
	}
	finalCapture := reachedByCapture || move.CapturesAt(move.To)

	var sb strings.Builder
	if move.Piece.Type.IsPawnLike() {
		if finalCapture && len(move.IntermediateSquares) == 0 {
			sb.WriteString(move.From.File())
		}
	} else {
		sb.WriteString(move.Piece.Type.Letter())
		sb.WriteString(disambiguation(move, legalMoves))
	}
	sb.WriteString(path.String())
	if finalCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.Square())
	if move.PromotesTo != nil {
		sb.WriteByte('=')
		sb.WriteString(move.PromotesTo.PromotionLetter())
	}

	for _, capture := range move.Captures {
		if capture.Position == move.To || jumped[capture.Position] {
			continue
		}
		sb.WriteByte('x')
		sb.WriteString(capture.Position.Square())
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or both, whichever is the
// least that tells move apart from other moves of the same piece type to
// the same square.
func disambiguation(move model.Move, legalMoves []model.Move) string {
	var req, fileReq, rankReq bool
	for _, other := range legalMoves {
		if other.From == move.From || other.To != move.To || other.Piece.Type != move.Piece.Type {
			continue
		}
		req = true
		if other.From.X == move.From.X {
			rankReq = true
		}
		if other.From.Y == move.From.Y {
			fileReq = true
		}
	}

	var sb strings.Builder
	if fileReq || !rankReq && req {
		sb.WriteString(move.From.File())
	}
	if rankReq {
		sb.WriteString(move.From.Rank())
	}
	return sb.String()
}
