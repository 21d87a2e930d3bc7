// Package notation renders moves in chess2 algebraic notation.
package notation

import (
	"strings"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// Notator renders one kind of move. legalMoves is the set the move was
// chosen from and is only consulted for disambiguation.
type Notator func(move model.Move, legalMoves []model.Move) string

var notators = map[model.SpecialMoveType]Notator{
	model.SpecialMoveNone:     Regular,
	model.KingsideCastle:      castle("O-O"),
	model.QueensideCastle:     castle("O-O-O"),
	model.VerticalCastle:      castle("O-O-O-O"),
	model.EnPassant:           EnPassant,
	model.KnooklearFusion:     Fusion,
	model.IlVaticano:          IlVaticano,
	model.OmnipotentPawnSpawn: Spawn,
}

// Notate picks the notator for the move's special-move tag.
func Notate(move model.Move, legalMoves []model.Move) string {
	notator, ok := notators[move.SpecialMoveType]
	if !ok {
		return Regular(move, legalMoves)
	}
	return notator(move, legalMoves)
}

func castle(marker string) Notator {
	return func(move model.Move, _ []model.Move) string {
		var sb strings.Builder
		sb.WriteString(marker)
		writeCaptures(&sb, move.Captures)
		return sb.String()
	}
}

// EnPassant renders "dxe6 e.p.".
func EnPassant(move model.Move, _ []model.Move) string {
	return move.From.File() + "x" + move.To.Square() + " e.p."
}

// Fusion renders the move as a quiet one that promotes into the fused
// piece, "Nc3=Kn".
func Fusion(move model.Move, legalMoves []model.Move) string {
	quiet := move
	quiet.Captures = nil
	return Regular(quiet, legalMoves)
}

func IlVaticano(move model.Move, _ []model.Move) string {
	var sb strings.Builder
	sb.WriteString("Il Vaticano ")
	sb.WriteString(move.Piece.Type.Letter())
	sb.WriteString(move.From.Square())
	sb.WriteByte('-')
	sb.WriteString(move.To.Square())
	writeCaptures(&sb, move.Captures)
	return sb.String()
}

// Spawn lists every spawned piece followed by every capture, "@Pf6xf6".
func Spawn(move model.Move, _ []model.Move) string {
	var sb strings.Builder
	for _, spawn := range move.PieceSpawns {
		sb.WriteByte('@')
		sb.WriteString(spawn.Type.PromotionLetter())
		sb.WriteString(spawn.Position.Square())
	}
	writeCaptures(&sb, move.Captures)
	return sb.String()
}

func writeCaptures(sb *strings.Builder, captures []model.MoveCapture) {
	for _, capture := range captures {
		sb.WriteByte('x')
		sb.WriteString(capture.Position.Square())
	}
}
