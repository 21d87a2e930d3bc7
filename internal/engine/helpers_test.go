package engine

import (
	"iter"
	"slices"
	"testing"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

func white(pieceType model.PieceType) model.Piece { return model.NewPiece(pieceType, model.White) }
func black(pieceType model.PieceType) model.Piece { return model.NewPiece(pieceType, model.Black) }

func sq(square string) model.Position { return model.MustParseSquare(square) }

func newTestBoard(t *testing.T, pieces map[string]model.Piece) *model.Board {
	t.Helper()
	board := model.NewDefaultBoard()
	for square, piece := range pieces {
		if err := board.PlacePiece(sq(square), piece); err != nil {
			t.Fatalf("PlacePiece(%s) error: %v", square, err)
		}
	}
	return board
}

// play applies a plain move as if it had been chosen from a legal set.
func play(t *testing.T, board *model.Board, from, to string) model.Move {
	t.Helper()
	piece, ok := board.PeekPieceAt(sq(from))
	if !ok {
		t.Fatalf("no piece on %s", from)
	}
	move := model.Move{From: sq(from), To: sq(to), Piece: piece}
	if victim, ok := board.PeekPieceAt(sq(to)); ok {
		move.Captures = []model.MoveCapture{{Piece: victim, Position: sq(to)}}
	}
	if err := board.ApplyMove(move); err != nil {
		t.Fatalf("ApplyMove(%s%s) error: %v", from, to, err)
	}
	return move
}

func collectSquares(seq iter.Seq[model.Position]) []string {
	var squares []string
	for pos := range seq {
		squares = append(squares, pos.Square())
	}
	return squares
}

func collectMoves(seq iter.Seq[model.Move]) []model.Move {
	var moves []model.Move
	for move := range seq {
		moves = append(moves, move)
	}
	return moves
}

func keys(moves []model.Move) []string {
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = move.Key()
	}
	slices.Sort(out)
	return out
}
