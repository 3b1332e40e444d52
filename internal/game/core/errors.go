package core

import "errors"

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOuterRing   = errors.New("outer ring must stay boundary")
)
