package common

import (
	"cmp"
	"math"
)

// TileSize is the edge length of one level cell in world units.
const TileSize = 32

func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Axis clamps an input axis reading to [-1, 1]. NaN reads as no input.
func Axis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, -1, 1)
}
