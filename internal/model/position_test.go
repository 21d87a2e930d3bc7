package model

import "testing"

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{X: 0, Y: 0}, "a1"},
		{Position{X: 5, Y: 5}, "f6"},
		{Position{X: 9, Y: 9}, "j10"},
		{Position{X: 4, Y: 1}, "e2"},
	}
	for _, tt := range tests {
		if got := tt.pos.Square(); got != tt.want {
			t.Errorf("%#v.Square() = %q, want %q", tt.pos, got, tt.want)
		}
		parsed, ok := ParseSquare(tt.want)
		if !ok || parsed != tt.pos {
			t.Errorf("ParseSquare(%q) = %v, %v, want %v", tt.want, parsed, ok, tt.pos)
		}
	}
}

func TestParseSquareRejects(t *testing.T) {
	for _, input := range []string{"", "a", "1a", "a0", "ax", "A1"} {
		if _, ok := ParseSquare(input); ok {
			t.Errorf("ParseSquare(%q) succeeded, want failure", input)
		}
	}
}

func TestOffsetArithmetic(t *testing.T) {
	start := Position{X: 3, Y: 4}
	offset := Offset{X: 2, Y: -1}
	if got := start.Add(offset); got != (Position{X: 5, Y: 3}) {
		t.Errorf("Add() = %v", got)
	}
	if got := start.Add(offset).Sub(offset); got != start {
		t.Errorf("Add then Sub = %v, want %v", got, start)
	}
	if got := start.OffsetTo(Position{X: 1, Y: 8}); got != (Offset{X: -2, Y: 4}) {
		t.Errorf("OffsetTo() = %v", got)
	}
}

func TestPieceFriendliness(t *testing.T) {
	white := NewPiece(Rook, White)
	black := NewPiece(Rook, Black)
	neutral := NewNeutralPiece(TraitorRook)

	tests := []struct {
		name string
		a, b Piece
		want bool
	}{
		{"same owner", white, NewPiece(Pawn, White), true},
		{"opposing owners", white, black, false},
		{"owned and neutral", white, neutral, false},
		{"both neutral", neutral, NewNeutralPiece(TraitorRook), true},
	}
	for _, tt := range tests {
		if got := tt.a.IsFriendlyTo(tt.b); got != tt.want {
			t.Errorf("%s: IsFriendlyTo() = %v, want %v", tt.name, got, tt.want)
		}
	}
	if neutral.IsOpponentOf(white) {
		t.Errorf("a neutral piece is nobody's opponent")
	}
}

func TestMoveKey(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"plain", Move{From: MustParseSquare("e2"), To: MustParseSquare("e4")}, "e2e4"},
		{"promotion", Move{From: MustParseSquare("b9"), To: MustParseSquare("b10")}.WithPromotion(Queen), "b9b10=Q"},
		{
			"chained",
			Move{
				From: MustParseSquare("c3"),
				To:   MustParseSquare("g7"),
				IntermediateSquares: []IntermediateSquare{
					{Position: MustParseSquare("d4"), IsCapture: true},
					{Position: MustParseSquare("e5")},
					{Position: MustParseSquare("f6"), IsCapture: true},
				},
			},
			"c3d4e5f6g7",
		},
	}
	for _, tt := range tests {
		if got := tt.move.Key(); got != tt.want {
			t.Errorf("%s: Key() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
