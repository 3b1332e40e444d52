package core

import (
	"image"
	"strings"

	"github.com/rs/zerolog"
)

// World is the tile grid of one level and the rules that mutate it: marking a
// trail, sealing a finished trail into claimed territory and rebuilding the
// boundary layer. It is not safe for concurrent use; one tick driver calls it
// at a time.
type World struct {
	tileSize int
	w, h     int
	t        []Tile // length = w*h (row-major)
	claimed  int

	logger zerolog.Logger

	// scratch space for flood fills, sized to the grid on first seal
	reach []bool
	queue []int
}

// NewWorld allocates a width x height grid with the outer ring set to
// Boundary and every interior cell Free. Dimensions below 2 are not
// supported; callers reject them before construction.
func NewWorld(tileSize, width, height int) *World {
	w := &World{
		tileSize: tileSize,
		w:        width,
		h:        height,
		t:        make([]Tile, width*height),
		logger:   zerolog.Nop(),
	}
	w.frame()
	return w
}

// SetLogger attaches a logger used for seal diagnostics.
func (w *World) SetLogger(logger zerolog.Logger) {
	w.logger = logger.With().Str("component", "world").Logger()
}

func (w *World) Width() int    { return w.w }
func (w *World) Height() int   { return w.h }
func (w *World) TileSize() int { return w.tileSize }

// ClaimedCount returns the cached number of Claimed cells.
func (w *World) ClaimedCount() int { return w.claimed }

func (w *World) idx(x, y int) int { return y*w.w + x }

// InBounds reports whether c lies inside the grid.
func (w *World) InBounds(c Cell) bool {
	return c.IsValid(w.w, w.h)
}

// IsOuter reports whether c is on the outer ring of the grid.
func (w *World) IsOuter(c Cell) bool {
	return c.X == 0 || c.Y == 0 || c.X == w.w-1 || c.Y == w.h-1
}

// Get returns the tile at c.
func (w *World) Get(c Cell) (Tile, error) {
	if !w.InBounds(c) {
		return Free, ErrOutOfBounds
	}
	return w.t[w.idx(c.X, c.Y)], nil
}

// Set overwrites the tile at c. Writing anything but Boundary onto the outer
// ring is refused. The claim counter follows cells entering or leaving Claimed.
func (w *World) Set(c Cell, tile Tile) error {
	if !w.InBounds(c) {
		return ErrOutOfBounds
	}
	if tile != Boundary && w.IsOuter(c) {
		return ErrOuterRing
	}
	i := w.idx(c.X, c.Y)
	switch prev := w.t[i]; {
	case prev == Claimed && tile != Claimed:
		w.claimed--
	case prev != Claimed && tile == Claimed:
		w.claimed++
	}
	w.t[i] = tile
	return nil
}

// Count returns the number of cells currently holding tile.
func (w *World) Count(tile Tile) int {
	n := 0
	for _, t := range w.t {
		if t == tile {
			n++
		}
	}
	return n
}

// HasTrail reports whether a push attempt is in progress on the grid.
func (w *World) HasTrail() bool {
	for _, t := range w.t {
		if t == Trail {
			return true
		}
	}
	return false
}

// ResetPush turns every Trail cell back into Free. Used when a push is
// aborted before it reaches an edge.
func (w *World) ResetPush() {
	w.replace(Trail, Free)
}

// ApplyTrail marks each in-bounds Free cell of trail as Trail. Cells in any
// other state are left alone, so reapplying the same trail is a no-op.
func (w *World) ApplyTrail(trail []Cell) {
	for _, c := range trail {
		if !w.InBounds(c) {
			continue
		}
		i := w.idx(c.X, c.Y)
		if w.t[i] == Free {
			w.t[i] = Trail
		}
	}
}

// QixHitsTrail reports whether the hazard stands on a cell of trail.
func (w *World) QixHitsTrail(hazard Cell, trail []Cell) bool {
	if !w.InBounds(hazard) {
		return false
	}
	for _, c := range trail {
		if c == hazard {
			return true
		}
	}
	return false
}

// PercentClaimed returns the claimed share of the grid in percent.
func (w *World) PercentClaimed() float64 {
	total := len(w.t)
	if total == 0 {
		return 0
	}
	return float64(w.claimed) / float64(total) * 100
}

// PixelRect returns the screen rectangle covered by c at the world's tile size.
func (w *World) PixelRect(c Cell) image.Rectangle {
	ts := w.tileSize
	return image.Rect(c.X*ts, c.Y*ts, (c.X+1)*ts, (c.Y+1)*ts)
}

// String renders the grid one rune per tile, rows separated by newlines.
func (w *World) String() string {
	var sb strings.Builder
	sb.Grow((w.w + 1) * w.h)
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			sb.WriteRune(w.t[w.idx(x, y)].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (w *World) replace(from, to Tile) int {
	n := 0
	for i := range w.t {
		if w.t[i] == from {
			w.t[i] = to
			n++
		}
	}
	return n
}

// frame sets the outer ring to Boundary.
func (w *World) frame() {
	for x := 0; x < w.w; x++ {
		w.t[w.idx(x, 0)] = Boundary
		w.t[w.idx(x, w.h-1)] = Boundary
	}
	for y := 0; y < w.h; y++ {
		w.t[w.idx(0, y)] = Boundary
		w.t[w.idx(w.w-1, y)] = Boundary
	}
}

func (w *World) recount() {
	w.claimed = w.Count(Claimed)
}
