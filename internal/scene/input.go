package scene

import (
	"fmt"

	"raycaster/internal/collision"
	"raycaster/internal/mathutil"

	"github.com/sirupsen/logrus"
)

// InputState is the set of held controls sampled once per frame
type InputState struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Any reports whether any control is held
func (in InputState) Any() bool {
	return in.Forward || in.Backward || in.TurnLeft || in.TurnRight
}

// StepResult describes what a Step did
type StepResult struct {
	Moved    bool
	Turned   bool
	BlockedX bool // Movement along x was rejected
	BlockedY bool
}

// Bumped reports whether any movement was rejected
func (r StepResult) Bumped() bool {
	return r.BlockedX || r.BlockedY
}

// Step advances the viewpoint by dt seconds of held input. Movement is
// applied and tested one axis at a time so the viewpoint slides along
// walls. A footprint leaving the grid is returned as an error.
func (s *Scene) Step(dt float64, in InputState) (StepResult, error) {
	var result StepResult

	if s.Settings.MaxFrameDelta > 0 {
		dt = mathutil.Clamp(0, s.Settings.MaxFrameDelta, dt)
	}
	if dt <= 0 {
		return result, nil
	}

	vp := &s.Viewpoint
	turn := s.Settings.TurnSpeed * dt
	if in.TurnLeft {
		vp.Rotate(-turn)
		result.Turned = true
	}
	if in.TurnRight {
		vp.Rotate(turn)
		result.Turned = true
	}

	distance := 0.0
	if in.Forward {
		distance += s.Settings.MoveSpeed * dt
	}
	if in.Backward {
		distance -= s.Settings.MoveSpeed * dt
	}
	if distance == 0 {
		return result, nil
	}

	dx := vp.GetForwardX() * distance
	dy := vp.GetForwardY() * distance

	// Each axis is tested from a candidate position; the viewpoint only
	// changes once Blocked has succeeded for both axes
	x, y := vp.GetPosition()
	blocked, err := collision.Blocked(s.Grid, x+dx, y, s.Settings.Radius)
	if err != nil {
		return result, fmt.Errorf("moving along x: %w", err)
	}
	if blocked {
		result.BlockedX = true
	} else {
		x += dx
	}

	blocked, err = collision.Blocked(s.Grid, x, y+dy, s.Settings.Radius)
	if err != nil {
		return result, fmt.Errorf("moving along y: %w", err)
	}
	if blocked {
		result.BlockedY = true
	} else {
		y += dy
	}

	vp.SetPosition(x, y)
	result.Moved = !result.BlockedX || !result.BlockedY
	if result.Bumped() {
		s.logger().WithFields(logrus.Fields{
			"x":         x,
			"y":         y,
			"blocked_x": result.BlockedX,
			"blocked_y": result.BlockedY,
		}).Debug("movement rejected")
		if s.Monitor != nil {
			s.Monitor.RecordBump()
		}
	}

	return result, nil
}
