package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Overlaps reports whether two axis-aligned boxes intersect. Boxes are given
// as centers plus full sizes (width, height, depth). The comparison is
// strict: boxes that exactly touch on a face do not count as overlapping.
func Overlaps(posA, sizeA, posB, sizeB rl.Vector3) bool {
	return absf(posA.X-posB.X)*2 < sizeA.X+sizeB.X &&
		absf(posA.Y-posB.Y)*2 < sizeA.Y+sizeB.Y &&
		absf(posA.Z-posB.Z)*2 < sizeA.Z+sizeB.Z
}

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
