package game

import "github.com/mitchelldurbincs/qixgrid/internal/game/core"

// Stats holds running totals for one game. They are updated in place by the
// game loop and survive level changes.
type Stats struct {
	Seals           int
	FloodSeals      int
	CellsClaimed    int
	PushesAborted   int
	PushesCancelled int
	LivesLost       int
	LevelsWon       int
}

func (s *Stats) recordSeal(res core.SealResult) {
	s.Seals++
	if res.Branch == core.SealFlood {
		s.FloodSeals++
	}
	s.CellsClaimed += res.NewlyClaimed
}

// Stats returns a copy of the game's running totals.
func (g *Game) Stats() Stats { return g.stats }
