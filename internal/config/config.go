// Package config loads the server configuration and starting layouts.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
)

// EnvVar names the YAML file read by FromEnv.
const EnvVar = "CHESS2_CONFIG"

// maxSquares keeps every square index inside one byte on the wire.
const maxSquares = 256

var ErrInvalidConfig = errors.New("invalid config")

type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"readBufferSize"`
	WriteBufferSize int `yaml:"writeBufferSize"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Listen       string          `yaml:"listen"`
	AllowOrigins []string        `yaml:"allowOrigins"`
	WebSocket    WebSocketConfig `yaml:"websocket"`
	Board        BoardConfig     `yaml:"board"`
	// LayoutFile replaces the embedded starting layout when set.
	LayoutFile string `yaml:"layoutFile"`
}

func Default() Config {
	return Config{
		Listen:       ":3000",
		AllowOrigins: []string{"http://localhost:5173"},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Board: BoardConfig{
			Width:  model.DefaultBoardWidth,
			Height: model.DefaultBoardHeight,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("'%s': %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("'%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("'%s': %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by CHESS2_CONFIG.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvVar))
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board is %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Board.Width*c.Board.Height > maxSquares {
		return fmt.Errorf("%w: board %dx%d has more than %d squares", ErrInvalidConfig, c.Board.Width, c.Board.Height, maxSquares)
	}
	if c.WebSocket.ReadBufferSize < 0 || c.WebSocket.WriteBufferSize < 0 {
		return fmt.Errorf("%w: negative websocket buffer size", ErrInvalidConfig)
	}
	return nil
}

// Layout loads LayoutFile, or the embedded layout when it is unset, and
// checks it fits the configured board.
func (c Config) Layout() (*Layout, error) {
	layout := DefaultLayout()
	if c.LayoutFile != "" {
		var err error
		if layout, err = LoadLayout(c.LayoutFile); err != nil {
			return nil, err
		}
	}
	if layout.Width() != c.Board.Width || layout.Height() != c.Board.Height {
		return nil, fmt.Errorf("%w: layout is %dx%d, board is %dx%d",
			ErrInvalidConfig, layout.Width(), layout.Height(), c.Board.Width, c.Board.Height)
	}
	return layout, nil
}
