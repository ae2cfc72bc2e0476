package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Obstacle is a static axis-aligned box the car can never pass through.
// Obstacles are set up once at startup and never move.
type Obstacle struct {
	Name   string
	Center rl.Vector3
	Size   rl.Vector3
}

// AABB returns the obstacle's box in min/max form.
func (o Obstacle) AABB() AABB {
	return NewAABBFromCenter(o.Center, o.Size)
}

// World owns the static collision geometry of the scene.
type World struct {
	obstacles []Obstacle
}

func NewWorld() *World {
	return &World{
		obstacles: make([]Obstacle, 0),
	}
}

func (w *World) Add(o Obstacle) {
	w.obstacles = append(w.obstacles, o)
}

func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// FirstOverlap returns the first obstacle overlapping a box at the given
// center and full size, if any.
func (w *World) FirstOverlap(center, size rl.Vector3) (Obstacle, bool) {
	for _, o := range w.obstacles {
		if Overlaps(center, size, o.Center, o.Size) {
			return o, true
		}
	}
	return Obstacle{}, false
}
