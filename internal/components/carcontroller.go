package components

import (
	"math"

	"drive3d/internal/engine"
	"drive3d/internal/input"
	"drive3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CarController drives a GameObject like a simple arcade car: signed scalar
// speed along a yaw-derived forward vector, with static obstacles vetoing
// illegal moves. There is no suspension, no wheel friction model and no
// rotational inertia.
type CarController struct {
	engine.BaseComponent

	// Tuning
	MaxSpeed     float32 // forward top speed, units per second
	Acceleration float32 // units per second squared
	Brake        float32
	Friction     float32 // coasting deceleration
	TurnSpeed    float32 // degrees per second at full steering input
	Size         rl.Vector3

	// Runtime state
	Speed float32
	Yaw   float32 // degrees, yaw 0 points toward +Z

	// Hit fires when a move is rejected by an obstacle.
	Hit engine.EventWithArg[physics.Obstacle]

	input *input.State
	world *physics.World
}

// speeds below this snap to zero so the car actually comes to rest
const restSpeedEpsilon = 0.01

func NewCarController(in *input.State, w *physics.World) *CarController {
	return &CarController{
		MaxSpeed:     12.0,
		Acceleration: 20.0,
		Brake:        30.0,
		Friction:     6.0,
		TurnSpeed:    90.0,
		Size:         rl.Vector3{X: 1.5, Y: 1.0, Z: 3.0},
		input:        in,
		world:        w,
	}
}

func (c *CarController) Update(deltaTime float32) {
	c.Step(c.input.Snapshot(), deltaTime)
}

// Step advances the car by one frame from an explicit input snapshot.
// deltaTime must be >= 0; zero is a no-op.
func (c *CarController) Step(snap input.Snapshot, deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	c.integrateSpeed(snap.ThrottleAxis(), deltaTime)

	// Steering sense inverts while reversing, like a real car backing up.
	turnDir := float32(1)
	if c.Speed < 0 {
		turnDir = -1
	}
	c.Yaw += snap.SteerAxis() * c.TurnSpeed * turnDir * deltaTime

	forward := c.Forward()
	next := rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(forward, c.Speed*deltaTime))

	// An overlapping obstacle rejects the whole move: no sliding, no bounce,
	// just a hard stop at the previous position.
	if obstacle, blocked := c.world.FirstOverlap(next, c.Size); blocked {
		c.Speed = 0
		c.Hit.Invoke(obstacle)
	} else {
		g.Transform.Position = next
	}

	g.Transform.Rotation.Y = c.Yaw
}

func (c *CarController) integrateSpeed(throttle, deltaTime float32) {
	switch {
	case throttle > 0:
		c.Speed += c.Acceleration * throttle * deltaTime
	case throttle < 0:
		c.Speed += c.Brake * throttle * deltaTime
	default:
		// Coasting: friction decays speed toward zero, never past it.
		if c.Speed > 0 {
			c.Speed -= c.Friction * deltaTime
			if c.Speed < 0 {
				c.Speed = 0
			}
		} else if c.Speed < 0 {
			c.Speed += c.Friction * deltaTime
			if c.Speed > 0 {
				c.Speed = 0
			}
		}
	}

	if absf(c.Speed) < restSpeedEpsilon {
		c.Speed = 0
	}

	// Reverse top speed is half the forward one.
	if c.Speed > c.MaxSpeed {
		c.Speed = c.MaxSpeed
	}
	if c.Speed < -c.MaxSpeed*0.5 {
		c.Speed = -c.MaxSpeed * 0.5
	}
}

// Forward returns the unit direction the car is facing.
func (c *CarController) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
