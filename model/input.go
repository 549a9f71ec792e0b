package model

// DiagonalFactor scales each axis of a combined forward and strafe move.
const DiagonalFactor = 0.7071067

// Input is one frame's snapshot of the movement and turn signals.
type Input struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Any reports whether any signal is held.
func (in Input) Any() bool {
	return in.Forward || in.Back || in.StrafeLeft || in.StrafeRight || in.TurnLeft || in.TurnRight
}

// Controls scales input signals into camera deltas.
type Controls struct {
	Speed    float64 `mapstructure:"speed" yaml:"speed"`
	MoveStep float64 `mapstructure:"move_step" yaml:"move_step"`
	TurnStep float64 `mapstructure:"turn_step" yaml:"turn_step"`
}

// Move is the distance covered by one frame of held movement.
func (c Controls) Move() float64 { return c.MoveStep * c.Speed }

// Turn is the angle covered by one frame of held turning.
func (c Controls) Turn() float64 { return c.TurnStep * c.Speed }

// Apply updates the camera from an input snapshot and reports whether the
// view changed. Forward with a strafe moves diagonally, forward leg first;
// otherwise forward, back, strafe left and strafe right are tried in that
// order and only the first held one applies. Turning right wins over turning
// left.
func (c *Camera) Apply(in Input, controls Controls) bool {
	step := controls.Move()
	moved := false

	switch {
	case in.Forward && in.StrafeRight:
		moved = c.MoveY(step*DiagonalFactor) || moved
		moved = c.MoveX(step*DiagonalFactor) || moved
	case in.Forward && in.StrafeLeft:
		moved = c.MoveY(step*DiagonalFactor) || moved
		moved = c.MoveX(-step*DiagonalFactor) || moved
	case in.Forward:
		moved = c.MoveY(step)
	case in.Back:
		moved = c.MoveY(-step)
	case in.StrafeLeft:
		moved = c.MoveX(-step)
	case in.StrafeRight:
		moved = c.MoveX(step)
	}

	switch {
	case in.TurnRight:
		moved = c.Swivel(controls.Turn()) || moved
	case in.TurnLeft:
		moved = c.Swivel(-controls.Turn()) || moved
	}

	return moved
}
