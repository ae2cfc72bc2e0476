package components

import (
	"drive3d/internal/engine"
	"drive3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider gives a GameObject an axis-aligned box, centered on its
// transform position plus an optional offset.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) Center() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

func (b *BoxCollider) AABB() physics.AABB {
	return physics.NewAABBFromCenter(b.Center(), b.Size)
}
