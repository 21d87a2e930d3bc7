package model

import "strings"

// Key is the canonical identifier of a move: origin, every intermediate
// square, destination and an optional promotion marker. Moves that agree on
// all four are the same move to a player and share a key.
func (m Move) Key() string {
	var sb strings.Builder
	sb.WriteString(m.From.Square())
	for _, intermediate := range m.IntermediateSquares {
		sb.WriteString(intermediate.Position.Square())
	}
	sb.WriteString(m.To.Square())
	if m.PromotesTo != nil {
		sb.WriteByte('=')
		sb.WriteString(m.PromotesTo.PromotionLetter())
	}
	return sb.String()
}
