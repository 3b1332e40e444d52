// Package scripted provides deterministic collaborators for the game loop.
// They replay fixed paths; there is no input handling and no AI.
package scripted

import "github.com/mitchelldurbincs/qixgrid/internal/game/core"

// Line returns the cells from a to b inclusive. Both ends must share a row or
// a column.
func Line(a, b core.Cell) []core.Cell {
	if a.X != b.X && a.Y != b.Y {
		panic("scripted: line endpoints must share a row or column")
	}
	path := []core.Cell{a}
	dir := heading(a, b)
	for c := a; c != b; {
		c = c.Move(dir)
		path = append(path, c)
	}
	return path
}

// Polyline joins straight segments through the given corners.
func Polyline(corners ...core.Cell) []core.Cell {
	if len(corners) == 0 {
		return nil
	}
	path := []core.Cell{corners[0]}
	for i := 1; i < len(corners); i++ {
		seg := Line(corners[i-1], corners[i])
		path = append(path, seg[1:]...)
	}
	return path
}

// heading returns the direction from a towards b on a shared row or column.
func heading(a, b core.Cell) core.Direction {
	switch {
	case b.Y < a.Y:
		return core.North
	case b.X > a.X:
		return core.East
	case b.Y > a.Y:
		return core.South
	default:
		return core.West
	}
}
