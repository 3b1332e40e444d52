package scripted

import "time"

// stepper turns frame deltas into whole steps. A zero interval steps on every update.
type stepper struct {
	every time.Duration
	acc   time.Duration
}

func (s *stepper) steps(dt time.Duration) int {
	if s.every <= 0 {
		return 1
	}
	s.acc += dt
	n := int(s.acc / s.every)
	s.acc -= time.Duration(n) * s.every
	return n
}
