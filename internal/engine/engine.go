package engine

import (
	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// Engine computes legal moves from a Rulebook. It holds no per-board
// state, so one Engine may serve many games.
type Engine struct {
	pieceRules    map[model.PieceType][]PieceRule
	standingRules []StandingRule
}

// New refuses a rulebook that leaves any piece type without rules.
func New(rulebook Rulebook) (*Engine, error) {
	if err := rulebook.Validate(); err != nil {
		return nil, err
	}
	pieceRules := make(map[model.PieceType][]PieceRule, len(rulebook.PieceRules))
	for pieceType, rules := range rulebook.PieceRules {
		pieceRules[pieceType] = append([]PieceRule(nil), rules...)
	}
	return &Engine{
		pieceRules:    pieceRules,
		standingRules: append([]StandingRule(nil), rulebook.StandingRules...),
	}, nil
}

// NewDefault builds an engine over DefaultRulebook.
func NewDefault() *Engine {
	eng, err := New(DefaultRulebook())
	if err != nil {
		panic(err)
	}
	return eng
}

// CandidateMoves is the unfiltered union of every piece rule for pieces
// color may move (its own and neutral ones) and every standing rule.
func (e *Engine) CandidateMoves(board *model.Board, color model.GameColor) []model.Move {
	var candidates []model.Move
	for pos, piece := range board.Pieces() {
		if !piece.IsNeutral() && !piece.BelongsTo(color) {
			continue
		}
		for _, rule := range e.pieceRules[piece.Type] {
			for move := range rule.Evaluate(board, pos, piece) {
				candidates = append(candidates, move)
			}
		}
	}
	for _, rule := range e.standingRules {
		for move := range rule.CandidateMoves(board, color) {
			candidates = append(candidates, move)
		}
	}
	return candidates
}

// CalculateAllLegalMoves applies the forced-move rule to the candidates:
// when any candidate is forced, only those sharing the highest priority
// survive.
func (e *Engine) CalculateAllLegalMoves(board *model.Board, color model.GameColor) *LegalMoveSet {
	candidates := e.CandidateMoves(board, color)

	maxPriority := model.ForcedNone
	for _, move := range candidates {
		maxPriority = max(maxPriority, move.ForcedPriority)
	}
	if maxPriority == model.ForcedNone {
		return newLegalMoveSet(candidates, false)
	}

	forced := make([]model.Move, 0, len(candidates))
	for _, move := range candidates {
		if move.ForcedPriority == maxPriority {
			forced = append(forced, move)
		}
	}
	return newLegalMoveSet(forced, true)
}

// LegalMovesFrom narrows the full computation to one origin square.
func (e *Engine) LegalMovesFrom(board *model.Board, color model.GameColor, pos model.Position) []model.Move {
	return e.CalculateAllLegalMoves(board, color).From(pos)
}
