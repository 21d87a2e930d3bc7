package engine

import "github.com/YishaiYosifov/chess2-sub007/internal/model"

// LegalMoveSet is a snapshot of the legal moves of one board state, keyed
// by move key. It is never updated in place.
type LegalMoveSet struct {
	moves          map[string]model.Move
	keys           []string
	hasForcedMoves bool
}

// newLegalMoveSet keys moves in generation order. The first move claiming
// a key wins.
func newLegalMoveSet(moves []model.Move, hasForcedMoves bool) *LegalMoveSet {
	set := &LegalMoveSet{
		moves:          make(map[string]model.Move, len(moves)),
		keys:           make([]string, 0, len(moves)),
		hasForcedMoves: hasForcedMoves,
	}
	for _, move := range moves {
		key := move.Key()
		if _, exists := set.moves[key]; exists {
			continue
		}
		set.moves[key] = move
		set.keys = append(set.keys, key)
	}
	return set
}

func (s *LegalMoveSet) Get(key string) (model.Move, bool) {
	move, ok := s.moves[key]
	return move, ok
}

func (s *LegalMoveSet) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *LegalMoveSet) Moves() []model.Move {
	moves := make([]model.Move, len(s.keys))
	for i, key := range s.keys {
		moves[i] = s.moves[key]
	}
	return moves
}

func (s *LegalMoveSet) Len() int {
	return len(s.keys)
}

func (s *LegalMoveSet) HasForcedMoves() bool {
	return s.hasForcedMoves
}

// From returns the moves starting on pos.
func (s *LegalMoveSet) From(pos model.Position) []model.Move {
	var moves []model.Move
	for _, key := range s.keys {
		if move := s.moves[key]; move.From == pos {
			moves = append(moves, move)
		}
	}
	return moves
}
