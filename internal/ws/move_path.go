package ws

import (
	"strconv"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// SquareIndex flattens a position to y*width+x.
type SquareIndex uint8

// MarshalJSON keeps index slices as JSON arrays of numbers instead of the
// base64 string encoding/json would use for a byte slice.
func (i SquareIndex) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(i), 10), nil
}

func IndexOf(pos model.Position, width int) SquareIndex {
	return SquareIndex(pos.Y*width + pos.X)
}

type SideEffectPath struct {
	FromIdx SquareIndex `json:"fromIdx"`
	ToIdx   SquareIndex `json:"toIdx"`
}

type PieceSpawnPath struct {
	Type   model.PieceType  `json:"type"`
	Color  *model.GameColor `json:"color"`
	PosIdx SquareIndex      `json:"posIdx"`
}

// MovePath is the compact form of a move sent to clients. It is never
// decoded back into a move; clients answer with MoveKey.
type MovePath struct {
	FromIdx          SquareIndex      `json:"fromIdx"`
	ToIdx            SquareIndex      `json:"toIdx"`
	MoveKey          string           `json:"moveKey"`
	CapturedIdxs     []SquareIndex    `json:"capturedIdxs,omitempty"`
	TriggerIdxs      []SquareIndex    `json:"triggerIdxs,omitempty"`
	IntermediateIdxs []SquareIndex    `json:"intermediateIdxs,omitempty"`
	SideEffects      []SideEffectPath `json:"sideEffects,omitempty"`
	PieceSpawns      []PieceSpawnPath `json:"pieceSpawns,omitempty"`
	PromotesTo       *model.PieceType `json:"promotesTo,omitempty"`
}

func EncodeMove(move model.Move, width int) MovePath {
	path := MovePath{
		FromIdx:    IndexOf(move.From, width),
		ToIdx:      IndexOf(move.To, width),
		MoveKey:    move.Key(),
		PromotesTo: move.PromotesTo,
	}
	for _, capture := range move.Captures {
		path.CapturedIdxs = append(path.CapturedIdxs, IndexOf(capture.Position, width))
	}
	for _, trigger := range move.TriggerSquares {
		path.TriggerIdxs = append(path.TriggerIdxs, IndexOf(trigger, width))
	}
	for _, intermediate := range move.IntermediateSquares {
		path.IntermediateIdxs = append(path.IntermediateIdxs, IndexOf(intermediate.Position, width))
	}
	for _, effect := range move.SideEffects {
		path.SideEffects = append(path.SideEffects, SideEffectPath{
			FromIdx: IndexOf(effect.From, width),
			ToIdx:   IndexOf(effect.To, width),
		})
	}
	for _, spawn := range move.PieceSpawns {
		path.PieceSpawns = append(path.PieceSpawns, PieceSpawnPath{
			Type:   spawn.Type,
			Color:  spawn.Color,
			PosIdx: IndexOf(spawn.Position, width),
		})
	}
	return path
}

func EncodeMoves(moves []model.Move, width int) []MovePath {
	paths := make([]MovePath, len(moves))
	for i, move := range moves {
		paths[i] = EncodeMove(move, width)
	}
	return paths
}

// LegalMovesPayload is the legal move set of the side to move.
type LegalMovesPayload struct {
	Moves          []MovePath `json:"moves"`
	HasForcedMoves bool       `json:"hasForcedMoves"`
}
