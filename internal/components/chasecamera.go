package components

import (
	"drive3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowSmoother moves a camera position toward its desired position over a
// frame. Implementations must be stable for any deltaTime >= 0.
type FollowSmoother interface {
	Smooth(current, desired rl.Vector3, deltaTime float32) rl.Vector3
}

// ExponentialSmoother lerps toward the desired position with a factor of
// Speed*deltaTime, clamped to [0,1] so a long frame can never overshoot.
type ExponentialSmoother struct {
	Speed float32
}

func (e ExponentialSmoother) Smooth(current, desired rl.Vector3, deltaTime float32) rl.Vector3 {
	t := e.Speed * deltaTime
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rl.Vector3Lerp(current, desired, t)
}

// ChaseCamera trails a CarController from behind and above, smoothing its own
// position while always looking straight at the car.
type ChaseCamera struct {
	engine.BaseComponent

	FollowDistance float32 // units behind the car
	Height         float32 // units above the car
	LookHeight     float32 // look target offset above the car position
	Smoother       FollowSmoother

	Position rl.Vector3

	target *CarController
	primed bool
}

func NewChaseCamera(target *CarController) *ChaseCamera {
	return &ChaseCamera{
		FollowDistance: 8.0,
		Height:         3.0,
		LookHeight:     1.0,
		Smoother:       ExponentialSmoother{Speed: 6.0},
		target:         target,
	}
}

func (c *ChaseCamera) Update(deltaTime float32) {
	desired := c.desiredPosition()

	// First frame places the camera directly at the follow point; smoothing
	// from the zero value would sweep the camera across the whole scene.
	if !c.primed {
		c.Position = desired
		c.primed = true
		return
	}

	c.Position = c.Smoother.Smooth(c.Position, desired, deltaTime)
}

func (c *ChaseCamera) desiredPosition() rl.Vector3 {
	carPos := c.target.GetGameObject().Transform.Position
	back := rl.Vector3Scale(c.target.Forward(), -c.FollowDistance)
	desired := rl.Vector3Add(carPos, back)
	desired.Y += c.Height
	return desired
}

// LookTarget is recomputed fresh each frame: only the camera position lags,
// the orientation always points at the current car.
func (c *ChaseCamera) LookTarget() rl.Vector3 {
	carPos := c.target.GetGameObject().Transform.Position
	carPos.Y += c.LookHeight
	return carPos
}

func (c *ChaseCamera) Up() rl.Vector3 {
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}

// Camera implements engine.ViewProvider.
func (c *ChaseCamera) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.LookTarget(),
		Up:         c.Up(),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
