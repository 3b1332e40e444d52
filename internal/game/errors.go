package game

import "errors"

var (
	ErrGameOver      = errors.New("game is over")
	ErrCannotResume  = errors.New("game is not paused")
	ErrInvalidConfig = errors.New("invalid game config")
)
