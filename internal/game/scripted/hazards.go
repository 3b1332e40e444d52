package scripted

import (
	"time"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
)

// Patrol walks a fixed loop of cells, one cell per step.
type Patrol struct {
	route []core.Cell
	pos   int
	clock stepper
}

func newPatrol(stepEvery time.Duration, route []core.Cell) Patrol {
	return Patrol{route: route, clock: stepper{every: stepEvery}}
}

func (p *Patrol) advance(dt time.Duration) {
	if len(p.route) == 0 {
		return
	}
	p.pos = (p.pos + p.clock.steps(dt)) % len(p.route)
}

func (p *Patrol) current() core.Cell {
	if len(p.route) == 0 {
		return core.Cell{X: -1, Y: -1}
	}
	return p.route[p.pos]
}

// Qix is a hazard that loops over a route. An empty route keeps it off the
// grid at (-1,-1).
type Qix struct {
	patrol Patrol
}

func NewQix(stepEvery time.Duration, route ...core.Cell) *Qix {
	return &Qix{patrol: newPatrol(stepEvery, route)}
}

func (q *Qix) Update(dt time.Duration, _ *core.World) { q.patrol.advance(dt) }
func (q *Qix) Cell() core.Cell                        { return q.patrol.current() }

// Sparx is a single spark looping over a route, usually along a boundary.
type Sparx struct {
	patrol Patrol
}

func NewSparx(stepEvery time.Duration, route ...core.Cell) *Sparx {
	return &Sparx{patrol: newPatrol(stepEvery, route)}
}

func (s *Sparx) Update(dt time.Duration, _ *core.World) { s.patrol.advance(dt) }
func (s *Sparx) Cell() core.Cell                        { return s.patrol.current() }

func (s *Sparx) HitsPlayer(c core.Cell) bool {
	return len(s.patrol.route) > 0 && s.patrol.current() == c
}

func (s *Sparx) HitsPushStart(c core.Cell) bool {
	return len(s.patrol.route) > 0 && s.patrol.current() == c
}
