package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (c ColliderSpec) validate(name string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %s collider %vx%v", ErrInvalidSpec, name, c.Width, c.Height)
	}
	return nil
}

type SpriteSpec struct {
	Color YAMLColor `yaml:"color"`
	Layer int       `yaml:"layer"`
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	HP        uint32       `yaml:"hp"`
	Power     uint32       `yaml:"power"`
	Belly     uint8        `yaml:"belly"`
	Collider  ColliderSpec `yaml:"collider"`
	Sprite    SpriteSpec   `yaml:"sprite"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("player"); err != nil {
		return nil, err
	}
	if spec.MoveSpeed < 0 {
		return nil, fmt.Errorf("%w: player move_speed %v", ErrInvalidSpec, spec.MoveSpeed)
	}
	return &spec, nil
}

// FoodSpec shares one collider between all food kinds. Sprites are keyed by
// kind name.
type FoodSpec struct {
	Name     string                `yaml:"name"`
	Collider ColliderSpec          `yaml:"collider"`
	Sprites  map[string]SpriteSpec `yaml:"sprites"`
}

func LoadFoodSpec() (*FoodSpec, error) {
	spec, err := LoadSpec[FoodSpec]("food.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("food"); err != nil {
		return nil, err
	}
	return &spec, nil
}

// PropSpec describes a single-tile prop such as an exit or an enemy.
type PropSpec struct {
	Name     string       `yaml:"name"`
	Collider ColliderSpec `yaml:"collider"`
	Sprite   SpriteSpec   `yaml:"sprite"`
}

func LoadPropSpec(filename string) (*PropSpec, error) {
	spec, err := LoadSpec[PropSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate(filename); err != nil {
		return nil, err
	}
	return &spec, nil
}

// TileSpec styles wall tiles. Their size comes from the level's cell size.
type TileSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
}

func LoadTileSpec() (*TileSpec, error) {
	spec, err := LoadSpec[TileSpec]("wall.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Specs bundles every prefab a level needs.
type Specs struct {
	Player *PlayerSpec
	Food   *FoodSpec
	Exit   *PropSpec
	Enemy  *PropSpec
	Wall   *TileSpec
}

func LoadAll() (*Specs, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	food, err := LoadFoodSpec()
	if err != nil {
		return nil, err
	}
	exit, err := LoadPropSpec("exit.yaml")
	if err != nil {
		return nil, err
	}
	enemy, err := LoadPropSpec("enemy.yaml")
	if err != nil {
		return nil, err
	}
	wall, err := LoadTileSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Player: player, Food: food, Exit: exit, Enemy: enemy, Wall: wall}, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	// Premultiply so the value is a valid color.RGBA.
	a := uint16(rgba[3])
	c.RGBA = color.RGBA{
		R: uint8(uint16(rgba[0]) * a / 255),
		G: uint8(uint16(rgba[1]) * a / 255),
		B: uint8(uint16(rgba[2]) * a / 255),
		A: rgba[3],
	}
	return nil
}
