package game

import (
	"time"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
)

// Player is the movement component that carves trails. The game loop reads
// its push state once per tick.
type Player interface {
	Update(dt time.Duration, w *core.World)
	Cell() core.Cell
	IsPushing() bool
	// OnEdge reports whether the current push has reached Boundary again.
	OnEdge() bool
	Trail() []core.Cell
	PushStartCell() core.Cell
	StopPush()
	ResetAfterHit()
}

// Qix is the roaming hazard. Its cell seeds the seal flood fill.
type Qix interface {
	Update(dt time.Duration, w *core.World)
	Cell() core.Cell
}

// Sparx are the boundary hazards.
type Sparx interface {
	Update(dt time.Duration, w *core.World)
	HitsPlayer(c core.Cell) bool
	HitsPushStart(c core.Cell) bool
}
