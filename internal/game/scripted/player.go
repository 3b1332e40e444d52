package scripted

import (
	"time"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
)

// Player replays a queue of pushes. Each push is a path that starts on a
// Boundary cell, crosses Free ground and ends when it steps onto Boundary
// again. A hit restarts the current push from its first cell.
type Player struct {
	pushes [][]core.Cell
	next   int // index of the active or upcoming push
	step   int

	cell    core.Cell
	pushing bool
	onEdge  bool
	trail   []core.Cell
	clock   stepper
}

// NewPlayer creates a player that takes one path step every stepEvery.
func NewPlayer(stepEvery time.Duration, pushes ...[]core.Cell) *Player {
	p := &Player{pushes: pushes, clock: stepper{every: stepEvery}}
	if len(pushes) > 0 && len(pushes[0]) > 0 {
		p.cell = pushes[0][0]
	}
	return p
}

func (p *Player) Update(dt time.Duration, w *core.World) {
	for n := p.clock.steps(dt); n > 0; n-- {
		p.advance(w)
	}
}

func (p *Player) advance(w *core.World) {
	if p.next >= len(p.pushes) {
		return
	}
	path := p.pushes[p.next]

	if !p.pushing {
		if len(path) < 2 {
			p.next++
			return
		}
		p.pushing = true
		p.onEdge = false
		p.step = 0
		p.cell = path[0]
		p.trail = p.trail[:0]
		return
	}
	if p.onEdge || p.step+1 >= len(path) {
		return
	}

	p.step++
	p.cell = path[p.step]
	tile, err := w.Get(p.cell)
	if err != nil {
		return
	}
	if tile == core.Boundary {
		p.onEdge = true
		return
	}
	p.trail = append(p.trail, p.cell)
}

func (p *Player) Cell() core.Cell { return p.cell }
func (p *Player) IsPushing() bool { return p.pushing }
func (p *Player) OnEdge() bool    { return p.pushing && p.onEdge }

// Trail returns the cells visited by the current push. The slice is owned by
// the player; callers copy it before keeping it.
func (p *Player) Trail() []core.Cell { return p.trail }

func (p *Player) PushStartCell() core.Cell {
	if p.next < len(p.pushes) && len(p.pushes[p.next]) > 0 {
		return p.pushes[p.next][0]
	}
	return p.cell
}

// StopPush ends the current push and moves on to the next scripted one.
func (p *Player) StopPush() {
	p.pushing = false
	p.onEdge = false
	p.trail = nil
	p.next++
}

// ResetAfterHit abandons the current push; it is replayed from the start.
func (p *Player) ResetAfterHit() {
	p.pushing = false
	p.onEdge = false
	p.trail = nil
	p.cell = p.PushStartCell()
}

// Done reports whether every scripted push has been completed.
func (p *Player) Done() bool { return p.next >= len(p.pushes) }
