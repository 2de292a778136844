package component

import "image/color"

// Sprite is the render handle of an entity. The simulation never reads it.
type Sprite struct {
	Color color.RGBA
	Layer int
}

var SpriteComponent = NewComponent[Sprite]()
