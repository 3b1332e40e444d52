package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// AssertGridInvariants checks the invariants every public World call must
// leave behind: a Boundary outer ring and a claim counter matching the grid.
func AssertGridInvariants(t *testing.T, w *core.World) {
	t.Helper()
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			c := core.NewCell(x, y)
			if !w.IsOuter(c) {
				continue
			}
			tile, err := w.Get(c)
			if assert.NoError(t, err) {
				assert.Equal(t, core.Boundary, tile, "outer ring cell %s", c)
			}
		}
	}
	assert.Equal(t, w.Count(core.Claimed), w.ClaimedCount(), "claim counter drifted")
}
