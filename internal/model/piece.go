package model

import "fmt"

type GameColor uint8

const (
	White GameColor = iota
	Black
)

func (c GameColor) Opposite() GameColor {
	if c == White {
		return Black
	}
	return White
}

func (c GameColor) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c GameColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *GameColor) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// ColorPtr is a convenience for building owned pieces.
func ColorPtr(c GameColor) *GameColor {
	return &c
}

type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Horsey
	Knook
	Pawn
	UnderagePawn
	TraitorRook
	Checker
)

// AllPieceTypes is the closed set of piece types a rulebook must cover.
var AllPieceTypes = []PieceType{
	King,
	Queen,
	Rook,
	Bishop,
	Horsey,
	Knook,
	Pawn,
	UnderagePawn,
	TraitorRook,
	Checker,
}

var pieceTypeNames = map[PieceType]string{
	King:         "king",
	Queen:        "queen",
	Rook:         "rook",
	Bishop:       "bishop",
	Horsey:       "horsey",
	Knook:        "knook",
	Pawn:         "pawn",
	UnderagePawn: "underagePawn",
	TraitorRook:  "traitorRook",
	Checker:      "checker",
}

func (p PieceType) String() string {
	if name, ok := pieceTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("piece(%d)", p)
}

// Letter is the notation prefix of the piece. Pawn-like pieces have none.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Horsey:
		return "N"
	case Knook:
		return "Kn"
	case TraitorRook:
		return "T"
	case Checker:
		return "C"
	}
	return ""
}

// PromotionLetter is used where a pawn-like piece still needs a symbol.
func (p PieceType) PromotionLetter() string {
	switch p {
	case Pawn:
		return "P"
	case UnderagePawn:
		return "U"
	}
	return p.Letter()
}

func (p PieceType) IsPawnLike() bool {
	return p == Pawn || p == UnderagePawn
}

func (p PieceType) MarshalText() ([]byte, error) {
	name, ok := pieceTypeNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown piece type %d", p)
	}
	return []byte(name), nil
}

func (p *PieceType) UnmarshalText(text []byte) error {
	parsed, ok := ParsePieceType(string(text))
	if !ok {
		return fmt.Errorf("unknown piece type %q", text)
	}
	*p = parsed
	return nil
}

func ParsePieceType(name string) (PieceType, bool) {
	for pieceType, pieceName := range pieceTypeNames {
		if pieceName == name {
			return pieceType, true
		}
	}
	return 0, false
}

// Piece is owned by the board square it stands on. A nil Color marks a
// neutral piece that either side may move.
type Piece struct {
	Type       PieceType  `json:"type"`
	Color      *GameColor `json:"color"`
	TimesMoved int        `json:"timesMoved"`
}

func NewPiece(pieceType PieceType, color GameColor) Piece {
	return Piece{Type: pieceType, Color: ColorPtr(color)}
}

func NewNeutralPiece(pieceType PieceType) Piece {
	return Piece{Type: pieceType}
}

func (p Piece) IsNeutral() bool {
	return p.Color == nil
}

func (p Piece) BelongsTo(color GameColor) bool {
	return p.Color != nil && *p.Color == color
}

// IsFriendlyTo reports whether both pieces are neutral or share an owner.
func (p Piece) IsFriendlyTo(other Piece) bool {
	if p.Color == nil || other.Color == nil {
		return p.Color == nil && other.Color == nil
	}
	return *p.Color == *other.Color
}

func (p Piece) IsEnemyOf(other Piece) bool {
	return !p.IsFriendlyTo(other)
}

// IsOpponentOf is stricter than IsEnemyOf: both pieces must be owned.
func (p Piece) IsOpponentOf(other Piece) bool {
	return p.Color != nil && other.Color != nil && *p.Color != *other.Color
}

func (p Piece) clone() Piece {
	if p.Color != nil {
		p.Color = ColorPtr(*p.Color)
	}
	return p
}

func (p Piece) String() string {
	owner := "neutral"
	if p.Color != nil {
		owner = p.Color.String()
	}
	return owner + " " + p.Type.String()
}
