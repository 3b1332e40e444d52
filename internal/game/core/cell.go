package core

import "fmt"

// Cell is an integer (x, y) grid position, 0-indexed.
type Cell struct {
	X, Y int
}

func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// FromIndex converts a row-major grid index back to a cell
func FromIndex(idx, width int) Cell {
	return Cell{
		X: idx % width,
		Y: idx / width,
	}
}

// ToIndex converts the cell to a row-major grid index
func (c Cell) ToIndex(width int) int {
	return c.Y*width + c.X
}

// IsValid checks if the cell is within the given bounds
func (c Cell) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Neighbors4 returns the four orthogonal (von Neumann) neighbors, unfiltered
func (c Cell) Neighbors4() [4]Cell {
	return [4]Cell{
		{X: c.X, Y: c.Y - 1}, // North
		{X: c.X + 1, Y: c.Y}, // East
		{X: c.X, Y: c.Y + 1}, // South
		{X: c.X - 1, Y: c.Y}, // West
	}
}

// Neighbors8 returns the eight surrounding (Moore) neighbors, unfiltered
func (c Cell) Neighbors8() [8]Cell {
	return [8]Cell{
		{X: c.X - 1, Y: c.Y - 1},
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y - 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y + 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X + 1, Y: c.Y + 1},
	}
}

// ValidNeighbors4 returns only the orthogonal neighbors within the given bounds
func (c Cell) ValidNeighbors4(width, height int) []Cell {
	valid := make([]Cell, 0, 4)
	for _, n := range c.Neighbors4() {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

// ValidNeighbors8 returns only the Moore neighbors within the given bounds
func (c Cell) ValidNeighbors8(width, height int) []Cell {
	valid := make([]Cell, 0, 8)
	for _, n := range c.Neighbors8() {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// DirectionVectors provides cell offsets for each direction
var DirectionVectors = map[Direction]Cell{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Move returns a new cell moved one step in the given direction
func (c Cell) Move(direction Direction) Cell {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}
