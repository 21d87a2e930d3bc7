package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

func TestNewRejectsIncompleteRulebook(t *testing.T) {
	rulebook := DefaultRulebook()
	delete(rulebook.PieceRules, model.Checker)

	_, err := New(rulebook)
	if !errors.Is(err, ErrIncompleteRulebook) {
		t.Fatalf("New() error = %v, want ErrIncompleteRulebook", err)
	}
	if !strings.Contains(err.Error(), "checker") {
		t.Errorf("error %q does not name the missing piece type", err)
	}

	if _, err := New(DefaultRulebook()); err != nil {
		t.Errorf("New(DefaultRulebook()) error: %v", err)
	}
}

func TestEmptyBoardHasNoMoves(t *testing.T) {
	set := NewDefault().CalculateAllLegalMoves(model.NewDefaultBoard(), model.White)
	if set.Len() != 0 || set.HasForcedMoves() {
		t.Errorf("empty board: %d moves, forced=%v", set.Len(), set.HasForcedMoves())
	}
}

func TestCheckerCaptureIsForced(t *testing.T) {
	board := newTestBoard(t, map[string]model.Piece{
		"a3": white(model.Checker),
		"b4": black(model.Pawn),
		"h1": white(model.Rook),
	})
	set := NewDefault().CalculateAllLegalMoves(board, model.White)
	if diff := cmp.Diff([]string{"a3b4c5"}, set.Keys()); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
	if !set.HasForcedMoves() {
		t.Error("HasForcedMoves() = false")
	}
}

func TestEnPassantOutranksCheckerCapture(t *testing.T) {
	movedPawn := white(model.Pawn)
	movedPawn.TimesMoved = 2
	board := newTestBoard(t, map[string]model.Piece{
		"a3": white(model.Checker),
		"b4": black(model.Pawn),
		"d5": movedPawn,
		"e7": black(model.Pawn),
	})
	play(t, board, "e7", "e5")

	set := NewDefault().CalculateAllLegalMoves(board, model.White)
	if diff := cmp.Diff([]string{"d5e6"}, set.Keys()); diff != "" {
		t.Fatalf("legal moves mismatch (-want +got):\n%s", diff)
	}
	move, ok := set.Get("d5e6")
	if !ok || move.SpecialMoveType != model.EnPassant {
		t.Errorf("Get(d5e6) = %v, %v", move, ok)
	}
	for _, move := range set.Moves() {
		if move.ForcedPriority != model.ForcedEnPassant {
			t.Errorf("%s survived with priority %v", move.Key(), move.ForcedPriority)
		}
	}
}

func TestNeutralPieceMovesForBothSides(t *testing.T) {
	board := newTestBoard(t, map[string]model.Piece{"e5": model.NewNeutralPiece(model.TraitorRook)})
	eng := NewDefault()

	whiteKeys := eng.CalculateAllLegalMoves(board, model.White).Keys()
	blackKeys := eng.CalculateAllLegalMoves(board, model.Black).Keys()
	if len(whiteKeys) != 18 {
		t.Errorf("white sees %d traitor rook moves, want 18", len(whiteKeys))
	}
	if diff := cmp.Diff(whiteKeys, blackKeys); diff != "" {
		t.Errorf("sides disagree (-white +black):\n%s", diff)
	}
}

func TestOpponentPiecesAreIgnored(t *testing.T) {
	board := newTestBoard(t, map[string]model.Piece{"e5": black(model.Queen)})
	if set := NewDefault().CalculateAllLegalMoves(board, model.White); set.Len() != 0 {
		t.Errorf("white moved a black queen: %v", set.Keys())
	}
}

func TestMovesStayOnBoard(t *testing.T) {
	eng := NewDefault()
	for _, pieceType := range model.AllPieceTypes {
		for _, color := range []model.GameColor{model.White, model.Black} {
			for y := 0; y < model.DefaultBoardHeight; y++ {
				for x := 0; x < model.DefaultBoardWidth; x++ {
					pos := model.Position{X: x, Y: y}
					board := model.NewDefaultBoard()
					if err := board.PlacePiece(pos, model.NewPiece(pieceType, color)); err != nil {
						t.Fatalf("PlacePiece(%s) error: %v", pos, err)
					}
					for _, move := range eng.CandidateMoves(board, color) {
						assertOnBoard(t, board, move)
					}
				}
			}
		}
	}
}

func assertOnBoard(t *testing.T, board *model.Board, move model.Move) {
	t.Helper()
	squares := []model.Position{move.From, move.To}
	for _, intermediate := range move.IntermediateSquares {
		squares = append(squares, intermediate.Position)
	}
	for _, capture := range move.Captures {
		squares = append(squares, capture.Position)
	}
	for _, effect := range move.SideEffects {
		squares = append(squares, effect.From, effect.To)
	}
	for _, spawn := range move.PieceSpawns {
		squares = append(squares, spawn.Position)
	}
	for _, pos := range squares {
		if !board.IsWithinBoundaries(pos) {
			t.Errorf("%s %s: square %v is off the board", move.Piece, move.Key(), pos)
		}
	}
}

func TestLegalMovesFrom(t *testing.T) {
	board := newTestBoard(t, map[string]model.Piece{
		"a1": white(model.Rook),
		"e5": white(model.King),
	})
	got := NewDefault().LegalMovesFrom(board, model.White, sq("a1"))
	if len(got) != 18 {
		t.Errorf("LegalMovesFrom(a1) = %d moves, want 18", len(got))
	}
	for _, move := range got {
		if move.From != sq("a1") {
			t.Errorf("%s does not start on a1", move.Key())
		}
	}
}

func TestLegalMoveSetFirstKeyWins(t *testing.T) {
	first := model.Move{From: sq("a1"), To: sq("a2"), Piece: white(model.Rook)}
	second := first
	second.SpecialMoveType = model.VerticalCastle

	set := newLegalMoveSet([]model.Move{first, second}, false)
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
	got, _ := set.Get("a1a2")
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("kept move mismatch (-want +got):\n%s", diff)
	}
}
