package core

import "fmt"

// Tile is the state of a single grid cell. Exactly one value applies at a time.
type Tile uint8

const (
	// Free is unclaimed, passable territory. It is the zero value.
	Free Tile = iota
	// Boundary is an immovable wall: the outer frame, a sealed trail, or
	// free space bordering claimed territory.
	Boundary
	// Trail marks an in-progress, unsealed player path.
	Trail
	// Claimed is permanently scored territory.
	Claimed
)

func (t Tile) String() string {
	switch t {
	case Free:
		return "Free"
	case Boundary:
		return "Boundary"
	case Trail:
		return "Trail"
	case Claimed:
		return "Claimed"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// Rune returns the character used for t in text dumps of the grid.
func (t Tile) Rune() rune {
	switch t {
	case Free:
		return '.'
	case Boundary:
		return '#'
	case Trail:
		return '*'
	case Claimed:
		return '@'
	default:
		return '?'
	}
}
