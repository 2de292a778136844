package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/burrow/common"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory checked before the embedded levels.
const Dir = "levels"

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile grid plus the entities placed on it. Rows run top to
// bottom; tile value 0 is empty, anything else is solid.
type Level struct {
	Name     string     `yaml:"name"`
	CellSize float64    `yaml:"cell_size"`
	Origin   Vec        `yaml:"origin"`
	Next     string     `yaml:"next"`
	Tiles    [][]uint32 `yaml:"tiles"`
	Entities []Entity   `yaml:"entities"`
}

// Vec is a world-space offset.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Entity struct {
	Type  string            `yaml:"type"`
	X     int               `yaml:"x"`
	Y     int               `yaml:"y"`
	Props map[string]string `yaml:"props,omitempty"`
}

func (l *Level) Width() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

func (l *Level) Height() int {
	return len(l.Tiles)
}

// Load reads and validates a level by name, e.g. "meadow" or "meadow.yaml".
func Load(name string) (*Level, error) {
	file := levelFile(name)
	data, err := os.ReadFile(filepath.Join(Dir, file))
	if err != nil {
		data, err = LevelsFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", file, err)
		}
	}
	return Parse(file, data)
}

// Parse decodes and validates level data. file only labels errors.
func Parse(file string, data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", file, err)
	}
	if lvl.CellSize == 0 {
		lvl.CellSize = common.TileSize
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, filepath.Ext(file))
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	return &lvl, nil
}

func levelFile(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	return name
}

var entityTypes = map[string]bool{
	"player": true,
	"food":   true,
	"exit":   true,
	"enemy":  true,
}

func (l *Level) validate() error {
	if l.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %v", ErrInvalidLevel, l.CellSize)
	}
	if len(l.Tiles) == 0 || len(l.Tiles[0]) == 0 {
		return fmt.Errorf("%w: empty tile grid", ErrInvalidLevel)
	}
	width := len(l.Tiles[0])
	for y, row := range l.Tiles {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLevel, y, len(row), width)
		}
	}

	players := 0
	for i, e := range l.Entities {
		typ := strings.ToLower(e.Type)
		if !entityTypes[typ] {
			return fmt.Errorf("%w: entity %d: unknown type %q", ErrInvalidLevel, i, e.Type)
		}
		if e.X < 0 || e.Y < 0 || e.X >= width || e.Y >= len(l.Tiles) {
			return fmt.Errorf("%w: entity %d (%s) at %d,%d is outside the grid", ErrInvalidLevel, i, typ, e.X, e.Y)
		}
		if typ == "player" {
			players++
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: want exactly one player, got %d", ErrInvalidLevel, players)
	}
	return nil
}
