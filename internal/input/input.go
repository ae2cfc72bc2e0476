// Package input holds the per-frame control state for the car demo.
//
// The host window layer writes pressed/released flags into a State; the
// simulation reads an immutable Snapshot once per frame. Writer and reader
// share the frame-loop thread, so no locking happens here. A host that
// delivers input on another thread must synchronize around Set itself.
package input

// Control identifies one of the discrete car controls.
type Control int

const (
	Throttle Control = iota
	Reverse
	SteerLeft
	SteerRight

	controlCount
)

// State maps each control to its current pressed state.
type State struct {
	down [controlCount]bool
}

func NewState() *State {
	return &State{}
}

// Set records a press or release coming from the host input boundary.
func (s *State) Set(c Control, pressed bool) {
	if c < 0 || c >= controlCount {
		return
	}
	s.down[c] = pressed
}

func (s *State) Down(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return s.down[c]
}

// Snapshot is the frozen control state for one frame.
type Snapshot struct {
	Throttle   bool
	Reverse    bool
	SteerLeft  bool
	SteerRight bool
}

// Snapshot copies the current state. The copy never changes, no matter what
// the host writes afterwards.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Throttle:   s.down[Throttle],
		Reverse:    s.down[Reverse],
		SteerLeft:  s.down[SteerLeft],
		SteerRight: s.down[SteerRight],
	}
}

// ThrottleAxis folds throttle and reverse into a single -1/0/+1 axis.
// Holding both cancels out.
func (s Snapshot) ThrottleAxis() float32 {
	var axis float32
	if s.Throttle {
		axis += 1
	}
	if s.Reverse {
		axis -= 1
	}
	return axis
}

// SteerAxis returns the steering input: +1 for left, -1 for right.
func (s Snapshot) SteerAxis() float32 {
	var axis float32
	if s.SteerLeft {
		axis += 1
	}
	if s.SteerRight {
		axis -= 1
	}
	return axis
}
