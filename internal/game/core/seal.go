package core

// SealBranch identifies which path SealArea took.
type SealBranch int

const (
	// SealFlood is the normal case: the hazard stood on Free ground and every
	// Free cell it cannot reach became Claimed.
	SealFlood SealBranch = iota
	// SealOffGrid means the hazard was outside the grid; the trail was
	// locked in as Boundary and nothing was claimed.
	SealOffGrid
	// SealBlocked means the hazard stood on non-Free ground; the trail was
	// locked in and the boundary rebuilt, nothing was claimed.
	SealBlocked
)

func (b SealBranch) String() string {
	switch b {
	case SealFlood:
		return "flood"
	case SealOffGrid:
		return "off_grid"
	case SealBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// SealResult summarises one SealArea call.
type SealResult struct {
	Branch       SealBranch
	TrailLocked  int // Trail cells converted to Boundary
	NewlyClaimed int // Claimed count delta
	ClaimedTotal int
}

// SealArea closes a push that reached a boundary. The trail becomes wall and,
// when the hazard stands on Free ground, every Free cell not connected to the
// hazard (4-way) becomes Claimed. trail is emptied in every case.
//
// An off-grid hazard locks the trail in without rebuilding the boundary, so
// the new wall survives until the next rebuild.
func (w *World) SealArea(hazard Cell, trail *[]Cell) SealResult {
	before := w.claimed
	res := SealResult{Branch: SealFlood}

	switch {
	case !w.InBounds(hazard):
		res.Branch = SealOffGrid
		res.TrailLocked = w.replace(Trail, Boundary)
	case w.t[w.idx(hazard.X, hazard.Y)] != Free:
		res.Branch = SealBlocked
		res.TrailLocked = w.replace(Trail, Boundary)
		w.RebuildBoundary()
	default:
		w.claimUnreachable(hazard)
		res.TrailLocked = w.replace(Trail, Boundary)
		w.RebuildBoundary()
	}

	if trail != nil {
		*trail = (*trail)[:0]
	}
	w.recount()

	res.ClaimedTotal = w.claimed
	res.NewlyClaimed = w.claimed - before

	w.logger.Debug().
		Str("branch", res.Branch.String()).
		Str("hazard", hazard.String()).
		Int("trail_locked", res.TrailLocked).
		Int("newly_claimed", res.NewlyClaimed).
		Float64("percent_claimed", w.PercentClaimed()).
		Msg("Area sealed")

	return res
}

// claimUnreachable flood-fills Free cells from seed and converts every Free
// cell the fill did not reach into Claimed.
func (w *World) claimUnreachable(seed Cell) {
	n := len(w.t)
	if cap(w.reach) < n {
		w.reach = make([]bool, n)
		w.queue = make([]int, 0, n)
	}
	reach := w.reach[:n]
	for i := range reach {
		reach[i] = false
	}
	queue := w.queue[:0]

	start := w.idx(seed.X, seed.Y)
	reach[start] = true
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		c := FromIndex(queue[head], w.w)
		for _, nb := range c.Neighbors4() {
			if !nb.IsValid(w.w, w.h) {
				continue
			}
			ni := w.idx(nb.X, nb.Y)
			if !reach[ni] && w.t[ni] == Free {
				reach[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	w.queue = queue[:0]

	for i, t := range w.t {
		if t == Free && !reach[i] {
			w.t[i] = Claimed
		}
	}
}

// RebuildBoundary recomputes the derived wall layer:
//  1. inner Boundary cells revert to Free,
//  2. the outer ring is set to Boundary,
//  3. Free cells with a Claimed cell among their 8 neighbours become Boundary.
//
// Step 3 is evaluated against the grid as it stood before any of its own
// conversions.
func (w *World) RebuildBoundary() {
	for y := 1; y < w.h-1; y++ {
		for x := 1; x < w.w-1; x++ {
			i := w.idx(x, y)
			if w.t[i] == Boundary {
				w.t[i] = Free
			}
		}
	}

	w.frame()

	var marks []int
	for i, t := range w.t {
		if t != Free {
			continue
		}
		c := FromIndex(i, w.w)
		for _, nb := range c.Neighbors8() {
			if nb.IsValid(w.w, w.h) && w.t[w.idx(nb.X, nb.Y)] == Claimed {
				marks = append(marks, i)
				break
			}
		}
	}
	for _, i := range marks {
		w.t[i] = Boundary
	}
}
