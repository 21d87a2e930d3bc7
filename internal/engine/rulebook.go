package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// ErrIncompleteRulebook is returned when a piece type has no rules.
var ErrIncompleteRulebook = errors.New("incomplete rulebook")

// Rulebook is the variant configuration handed to New: the rules for every
// piece type and the standing rules in play.
type Rulebook struct {
	PieceRules    map[model.PieceType][]PieceRule
	StandingRules []StandingRule
}

// Validate reports every piece type without at least one rule.
func (r Rulebook) Validate() error {
	var missing []string
	for _, pieceType := range model.AllPieceTypes {
		if len(r.PieceRules[pieceType]) == 0 {
			missing = append(missing, pieceType.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: no rules for %s", ErrIncompleteRulebook, strings.Join(missing, ", "))
	}
	return nil
}

var (
	kingOffsets = []model.Offset{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}
	diagonalOffsets = []model.Offset{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	horseyOffsets   = []model.Offset{
		{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1},
		{X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2},
	}

	pawnCaptureOffsets = []model.Offset{{X: -1, Y: 1}, {X: 1, Y: 1}}
	pawnLike           = []model.PieceType{model.Pawn, model.UnderagePawn}
	promotionTargets   = []model.PieceType{model.Queen, model.Rook, model.Bishop, model.Horsey, model.Knook}
)

const pawnFirstMoveReach = 3

// DefaultRulebook is the chess2 rule set on the default board.
func DefaultRulebook() Rulebook {
	forwardDiagonals := []Movement{forwardStep(pawnCaptureOffsets[0]), forwardStep(pawnCaptureOffsets[1])}
	pawnAdvance := Conditional(
		HasNeverMoved,
		forwardSlideN(model.Offset{X: 0, Y: 1}, pawnFirstMoveReach),
		forwardStep(model.Offset{X: 0, Y: 1}),
	)

	return Rulebook{
		PieceRules: map[model.PieceType][]PieceRule{
			model.King: {
				CaptureOrEmpty(steps(kingOffsets...)...),
				Castle(),
			},
			model.Queen: {
				CaptureOrEmpty(slides(kingOffsets...)...),
			},
			model.Rook: {
				CaptureOrEmpty(slides(orthogonal...)...),
				Fusion(model.Horsey, model.Knook, slides(orthogonal...)...),
			},
			model.Bishop: {
				CaptureOrEmpty(slides(diagonalOffsets...)...),
				IlVaticano(),
			},
			model.Horsey: {
				CaptureOrEmpty(steps(horseyOffsets...)...),
				Fusion(model.Rook, model.Knook, steps(horseyOffsets...)...),
			},
			model.Knook: {
				CaptureOrEmpty(append(slides(orthogonal...), steps(horseyOffsets...)...)...),
			},
			model.Pawn: {
				Promotion(NoCapture(pawnAdvance), promotionTargets...),
				Promotion(CaptureOnly(forwardDiagonals...), promotionTargets...),
				EnPassant(pawnLike, forwardDiagonals...),
			},
			model.UnderagePawn: {
				NoCapture(forwardStep(model.Offset{X: 0, Y: 1})),
				CaptureOnly(forwardDiagonals...),
				EnPassant(pawnLike, forwardDiagonals...),
			},
			model.TraitorRook: {
				CaptureOrEmpty(slides(orthogonal...)...),
			},
			model.Checker: {
				NoCapture(forwardDiagonals...),
				CheckerJump(),
			},
		},
		StandingRules: []StandingRule{
			OmnipotentPawn(SquareZone(model.MustParseSquare("f6"), model.MustParseSquare("f5"))),
		},
	}
}
