package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func vec3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func TestOverlapsBasic(t *testing.T) {
	unit := vec3(2, 2, 2)

	assert.True(t, Overlaps(vec3(0, 0, 0), unit, vec3(1, 1, 1), unit))
	assert.False(t, Overlaps(vec3(0, 0, 0), unit, vec3(5, 0, 0), unit))

	// Overlap on two axes but separation on the third is no collision.
	assert.False(t, Overlaps(vec3(0, 0, 0), unit, vec3(0.5, 0.5, 10), unit))
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		posA, sizeA, posB, sizeB rl.Vector3
	}{
		{vec3(0, 0, 0), vec3(2, 2, 2), vec3(1, 1, 1), vec3(2, 2, 2)},
		{vec3(0, 0, 0), vec3(1.5, 1, 3), vec3(0, 2, 20), vec3(4, 4, 0.5)},
		{vec3(-3, 0, 7), vec3(1, 1, 1), vec3(-3, 0.4, 7.2), vec3(2, 2, 2)},
	}

	for _, c := range cases {
		assert.Equal(t,
			Overlaps(c.posA, c.sizeA, c.posB, c.sizeB),
			Overlaps(c.posB, c.sizeB, c.posA, c.sizeA),
			"overlap test must be symmetric")
	}
}

func TestOverlapsSelf(t *testing.T) {
	assert.True(t, Overlaps(vec3(1, 2, 3), vec3(1, 1, 1), vec3(1, 2, 3), vec3(1, 1, 1)))

	// A zero-extent box cannot overlap anything, not even itself.
	assert.False(t, Overlaps(vec3(1, 2, 3), vec3(0, 0, 0), vec3(1, 2, 3), vec3(0, 0, 0)))
}

func TestOverlapsTouchingIsNotCollision(t *testing.T) {
	unit := vec3(2, 2, 2)

	// Faces exactly touching on X: |dx|*2 == sizeA+sizeB.
	assert.False(t, Overlaps(vec3(0, 0, 0), unit, vec3(2, 0, 0), unit))
	// Nudged inward by any amount, they overlap.
	assert.True(t, Overlaps(vec3(0, 0, 0), unit, vec3(1.99, 0, 0), unit))
}

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 2, 20), vec3(4, 4, 0.5))

	assert.Equal(t, vec3(-2, 0, 19.75), box.Min)
	assert.Equal(t, vec3(2, 4, 20.25), box.Max)
}
