package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

//go:embed default_layout.yaml
var defaultLayoutYAML []byte

type layoutFile struct {
	Width   int                        `yaml:"width"`
	Height  int                        `yaml:"height"`
	White   map[string]model.PieceType `yaml:"white"`
	Black   map[string]model.PieceType `yaml:"black"`
	Neutral map[string]model.PieceType `yaml:"neutral"`
}

type Placement struct {
	Position model.Position
	Piece    model.Piece
}

// Layout is a starting position. It cannot be changed once parsed.
type Layout struct {
	width      int
	height     int
	placements []Placement
}

// ParseLayout decodes a layout and rejects unknown squares, squares off
// the board and squares listed twice.
func ParseLayout(data []byte) (*Layout, error) {
	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if file.Width <= 0 || file.Height <= 0 {
		return nil, fmt.Errorf("%w: layout is %dx%d", ErrInvalidConfig, file.Width, file.Height)
	}

	layout := &Layout{width: file.Width, height: file.Height}
	seen := make(map[model.Position]bool)
	add := func(pieces map[string]model.PieceType, color *model.GameColor) error {
		for square, pieceType := range pieces {
			pos, ok := model.ParseSquare(square)
			if !ok {
				return fmt.Errorf("%w: bad square '%s'", ErrInvalidConfig, square)
			}
			if pos.X >= file.Width || pos.Y >= file.Height {
				return fmt.Errorf("%w: square %s is off a %dx%d board", ErrInvalidConfig, square, file.Width, file.Height)
			}
			if seen[pos] {
				return fmt.Errorf("%w: square %s listed twice", ErrInvalidConfig, square)
			}
			seen[pos] = true

			piece := model.NewNeutralPiece(pieceType)
			if color != nil {
				piece = model.NewPiece(pieceType, *color)
			}
			layout.placements = append(layout.placements, Placement{Position: pos, Piece: piece})
		}
		return nil
	}
	if err := add(file.White, model.ColorPtr(model.White)); err != nil {
		return nil, err
	}
	if err := add(file.Black, model.ColorPtr(model.Black)); err != nil {
		return nil, err
	}
	if err := add(file.Neutral, nil); err != nil {
		return nil, err
	}

	slices.SortFunc(layout.placements, func(a, b Placement) int {
		if a.Position.Y != b.Position.Y {
			return a.Position.Y - b.Position.Y
		}
		return a.Position.X - b.Position.X
	})
	return layout, nil
}

func LoadLayout(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	layout, err := ParseLayout(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return layout, nil
}

// DefaultLayout is the embedded chess2 starting position.
func DefaultLayout() *Layout {
	layout, err := ParseLayout(defaultLayoutYAML)
	if err != nil {
		panic(fmt.Errorf("embedded layout: %w", err))
	}
	return layout
}

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }

// Placements are in row-major order, rank 1 first.
func (l *Layout) Placements() []Placement {
	placements := make([]Placement, len(l.placements))
	for i, placement := range l.placements {
		placements[i] = placement
		if placement.Piece.Color != nil {
			placements[i].Piece.Color = model.ColorPtr(*placement.Piece.Color)
		}
	}
	return placements
}

// Apply places every piece of the layout on board.
func (l *Layout) Apply(board *model.Board) error {
	for _, placement := range l.Placements() {
		if err := board.PlacePiece(placement.Position, placement.Piece); err != nil {
			return err
		}
	}
	return nil
}

// NewBoard returns a board of the layout's size with the layout applied.
func (l *Layout) NewBoard() (*model.Board, error) {
	board := model.NewBoard(l.width, l.height)
	if err := l.Apply(board); err != nil {
		return nil, err
	}
	return board, nil
}
