package model

type SpecialMoveType uint8

const (
	SpecialMoveNone SpecialMoveType = iota
	KingsideCastle
	QueensideCastle
	VerticalCastle
	EnPassant
	KnooklearFusion
	IlVaticano
	OmnipotentPawnSpawn
)

// AllSpecialMoveTypes lists every tag, SpecialMoveNone included.
var AllSpecialMoveTypes = []SpecialMoveType{
	SpecialMoveNone,
	KingsideCastle,
	QueensideCastle,
	VerticalCastle,
	EnPassant,
	KnooklearFusion,
	IlVaticano,
	OmnipotentPawnSpawn,
}

func (s SpecialMoveType) String() string {
	switch s {
	case SpecialMoveNone:
		return "none"
	case KingsideCastle:
		return "kingsideCastle"
	case QueensideCastle:
		return "queensideCastle"
	case VerticalCastle:
		return "verticalCastle"
	case EnPassant:
		return "enPassant"
	case KnooklearFusion:
		return "knooklearFusion"
	case IlVaticano:
		return "ilVaticano"
	case OmnipotentPawnSpawn:
		return "omnipotentPawnSpawn"
	}
	return "unknown"
}

func (s SpecialMoveType) IsCastle() bool {
	return s == KingsideCastle || s == QueensideCastle || s == VerticalCastle
}

// ForcedMovePriority ranks forced moves. When any candidate carries a
// priority above ForcedNone only the highest ranked candidates are legal.
type ForcedMovePriority uint8

const (
	ForcedNone ForcedMovePriority = iota
	ForcedCheckerCapture
	ForcedEnPassant
)

type IntermediateSquare struct {
	Position  Position `json:"position"`
	IsCapture bool     `json:"isCapture"`
}

type MoveCapture struct {
	Piece    Piece    `json:"piece"`
	Position Position `json:"position"`
}

type MoveSideEffect struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Piece Piece    `json:"piece"`
}

type PieceSpawn struct {
	Type     PieceType  `json:"type"`
	Color    *GameColor `json:"color"`
	Position Position   `json:"position"`
}

// Move is a fully resolved candidate. Piece is a snapshot taken before the
// move; TriggerSquares and IntermediateSquares are presentation hints and
// play no part in applying the move.
type Move struct {
	From                Position             `json:"from"`
	To                  Position             `json:"to"`
	Piece               Piece                `json:"piece"`
	TriggerSquares      []Position           `json:"triggerSquares,omitempty"`
	IntermediateSquares []IntermediateSquare `json:"intermediateSquares,omitempty"`
	Captures            []MoveCapture        `json:"captures,omitempty"`
	SideEffects         []MoveSideEffect     `json:"sideEffects,omitempty"`
	PieceSpawns         []PieceSpawn         `json:"pieceSpawns,omitempty"`
	SpecialMoveType     SpecialMoveType      `json:"specialMoveType"`
	ForcedPriority      ForcedMovePriority   `json:"forcedPriority"`
	PromotesTo          *PieceType           `json:"promotesTo,omitempty"`
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// CapturesAt reports whether the move removes a piece standing on pos.
func (m Move) CapturesAt(pos Position) bool {
	for _, capture := range m.Captures {
		if capture.Position == pos {
			return true
		}
	}
	return false
}

// WithPromotion returns a copy of m promoting to pieceType.
func (m Move) WithPromotion(pieceType PieceType) Move {
	m.PromotesTo = &pieceType
	return m
}
