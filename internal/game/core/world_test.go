package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a world from a text picture using Tile.Rune symbols.
func gridFromRows(t *testing.T, rows ...string) *World {
	t.Helper()
	require.NotEmpty(t, rows)
	w := NewWorld(8, len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, w.Width(), "row %d has wrong width", y)
		for x, r := range row {
			var tile Tile
			switch r {
			case '.':
				tile = Free
			case '#':
				tile = Boundary
			case '*':
				tile = Trail
			case '@':
				tile = Claimed
			default:
				t.Fatalf("unknown tile rune %q", r)
			}
			w.t[w.idx(x, y)] = tile
		}
	}
	w.recount()
	return w
}

func assertOuterRing(t *testing.T, w *World) {
	t.Helper()
	for x := 0; x < w.Width(); x++ {
		for _, y := range []int{0, w.Height() - 1} {
			tile, err := w.Get(Cell{x, y})
			require.NoError(t, err)
			assert.Equal(t, Boundary, tile, "ring cell (%d,%d)", x, y)
		}
	}
	for y := 0; y < w.Height(); y++ {
		for _, x := range []int{0, w.Width() - 1} {
			tile, err := w.Get(Cell{x, y})
			require.NoError(t, err)
			assert.Equal(t, Boundary, tile, "ring cell (%d,%d)", x, y)
		}
	}
}

func TestNewWorld(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"minimum grid", 2, 2},
		{"small square", 5, 5},
		{"rectangular", 12, 7},
		{"large", 200, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(10, tt.width, tt.height)

			assert.Equal(t, tt.width, w.Width())
			assert.Equal(t, tt.height, w.Height())
			assert.Equal(t, 10, w.TileSize())
			assert.Equal(t, 0, w.ClaimedCount())
			assert.Equal(t, 0.0, w.PercentClaimed())
			assertOuterRing(t, w)

			interior := (tt.width - 2) * (tt.height - 2)
			assert.Equal(t, interior, w.Count(Free))
			assert.Equal(t, tt.width*tt.height-interior, w.Count(Boundary))
		})
	}
}

func TestWorld_InBounds(t *testing.T) {
	w := NewWorld(10, 5, 4)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{4, 3}, true},
		{"negative x", Cell{-1, 2}, false},
		{"negative y", Cell{2, -1}, false},
		{"x too large", Cell{5, 0}, false},
		{"y too large", Cell{0, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.InBounds(tt.cell))
		})
	}
}

func TestWorld_IsOuter(t *testing.T) {
	w := NewWorld(10, 5, 4)

	assert.True(t, w.IsOuter(Cell{0, 2}))
	assert.True(t, w.IsOuter(Cell{4, 1}))
	assert.True(t, w.IsOuter(Cell{2, 0}))
	assert.True(t, w.IsOuter(Cell{2, 3}))
	assert.False(t, w.IsOuter(Cell{1, 1}))
	assert.False(t, w.IsOuter(Cell{3, 2}))
}

func TestWorld_GetSet(t *testing.T) {
	w := NewWorld(10, 6, 6)

	t.Run("interior round trip", func(t *testing.T) {
		for _, tile := range []Tile{Trail, Claimed, Boundary, Free} {
			require.NoError(t, w.Set(Cell{2, 3}, tile))
			got, err := w.Get(Cell{2, 3})
			require.NoError(t, err)
			assert.Equal(t, tile, got)
			assert.Equal(t, w.Count(Claimed), w.ClaimedCount(), "after writing %s", tile)
		}
	})

	t.Run("claim counter follows writes", func(t *testing.T) {
		w := NewWorld(10, 10, 10)

		require.NoError(t, w.Set(Cell{4, 4}, Claimed))
		assert.Equal(t, 1, w.ClaimedCount())
		assert.InDelta(t, 1.0, w.PercentClaimed(), 1e-9)

		// rewriting the same value does not double count
		require.NoError(t, w.Set(Cell{4, 4}, Claimed))
		assert.Equal(t, 1, w.ClaimedCount())

		require.NoError(t, w.Set(Cell{5, 4}, Claimed))
		require.NoError(t, w.Set(Cell{4, 4}, Boundary))
		assert.Equal(t, 1, w.ClaimedCount())
		assert.Equal(t, w.Count(Claimed), w.ClaimedCount())

		// a refused write leaves the counter alone
		assert.ErrorIs(t, w.Set(Cell{0, 0}, Claimed), ErrOuterRing)
		assert.Equal(t, 1, w.ClaimedCount())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := w.Get(Cell{-1, 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, w.Set(Cell{6, 6}, Free), ErrOutOfBounds)
	})

	t.Run("outer ring stays boundary", func(t *testing.T) {
		assert.ErrorIs(t, w.Set(Cell{0, 3}, Free), ErrOuterRing)
		assert.ErrorIs(t, w.Set(Cell{5, 5}, Claimed), ErrOuterRing)
		assert.NoError(t, w.Set(Cell{0, 3}, Boundary))
		assertOuterRing(t, w)
	})
}

func TestWorld_ApplyTrail(t *testing.T) {
	w := gridFromRows(t,
		"######",
		"#..@.#",
		"#....#",
		"######",
	)

	trail := []Cell{{0, 2}, {1, 2}, {2, 2}, {2, 1}, {3, 1}, {-3, 9}}
	w.ApplyTrail(trail)

	assert.Equal(t, strings.Join([]string{
		"######",
		"#.*@.#",
		"#**..#",
		"######",
	}, "\n")+"\n", w.String())

	t.Run("idempotent", func(t *testing.T) {
		once := w.String()
		w.ApplyTrail(trail)
		assert.Equal(t, once, w.String())
	})

	t.Run("order independent", func(t *testing.T) {
		other := gridFromRows(t,
			"######",
			"#..@.#",
			"#....#",
			"######",
		)
		reversed := make([]Cell, len(trail))
		for i, c := range trail {
			reversed[len(trail)-1-i] = c
		}
		other.ApplyTrail(reversed)
		assert.Equal(t, w.String(), other.String())
	})
}

func TestWorld_ResetPush(t *testing.T) {
	w := NewWorld(10, 8, 8)
	w.ApplyTrail([]Cell{{1, 4}, {2, 4}, {3, 4}, {3, 5}})
	require.True(t, w.HasTrail())
	require.NoError(t, w.Set(Cell{5, 5}, Claimed))

	w.ResetPush()

	assert.False(t, w.HasTrail())
	assert.Equal(t, 0, w.Count(Trail))
	tile, _ := w.Get(Cell{3, 5})
	assert.Equal(t, Free, tile)
	tile, _ = w.Get(Cell{5, 5})
	assert.Equal(t, Claimed, tile, "reset must only touch trail cells")
	assertOuterRing(t, w)
}

func TestWorld_QixHitsTrail(t *testing.T) {
	w := NewWorld(10, 10, 10)
	trail := []Cell{{1, 3}, {2, 3}, {3, 3}, {3, 3}}

	tests := []struct {
		name     string
		hazard   Cell
		trail    []Cell
		expected bool
	}{
		{"on trail", Cell{2, 3}, trail, true},
		{"on duplicated cell", Cell{3, 3}, trail, true},
		{"beside trail", Cell{2, 4}, trail, false},
		{"off grid", Cell{-1, -1}, append([]Cell{{-1, -1}}, trail...), false},
		{"empty trail", Cell{2, 3}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := w.String()
			assert.Equal(t, tt.expected, w.QixHitsTrail(tt.hazard, tt.trail))
			assert.Equal(t, before, w.String(), "predicate must not mutate the grid")
		})
	}
}

func TestWorld_PercentClaimed(t *testing.T) {
	w := NewWorld(10, 10, 10)
	assert.Equal(t, 0.0, w.PercentClaimed())

	empty := &World{}
	assert.Equal(t, 0.0, empty.PercentClaimed())
}

func TestWorld_PixelRect(t *testing.T) {
	w := NewWorld(16, 10, 10)
	r := w.PixelRect(Cell{2, 3})
	assert.Equal(t, 32, r.Min.X)
	assert.Equal(t, 48, r.Min.Y)
	assert.Equal(t, 16, r.Dx())
	assert.Equal(t, 16, r.Dy())
}

func TestWorld_String(t *testing.T) {
	w := NewWorld(10, 4, 3)
	assert.Equal(t, "####\n#..#\n####\n", w.String())
}

func TestTile_String(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected string
		r        rune
	}{
		{Free, "Free", '.'},
		{Boundary, "Boundary", '#'},
		{Trail, "Trail", '*'},
		{Claimed, "Claimed", '@'},
		{Tile(9), "Unknown(9)", '?'},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tile.String())
			assert.Equal(t, tt.r, tt.tile.Rune())
		})
	}
}
