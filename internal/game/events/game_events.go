package events

import (
	"time"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameOver        = "game.over"
	TypeAreaSealed      = "area.sealed"
	TypePushAborted     = "push.aborted"
	TypePushCancelled   = "push.cancelled"
	TypeLifeLost        = "life.lost"
	TypeLevelWon        = "level.won"
	TypeStateTransition = "state.transition"
)

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	Width         int
	Height        int
	Lives         int
	TargetPercent float64
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, width, height, lives int, targetPercent float64) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:     newBase(TypeGameStarted, gameID),
		Metadata:      EventMetadata{Level: 1},
		Width:         width,
		Height:        height,
		Lives:         lives,
		TargetPercent: targetPercent,
	}
}

// AreaSealedEvent is published after a push reached an edge and was sealed
type AreaSealedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	Branch         string
	Hazard         core.Cell
	TrailLength    int
	NewlyClaimed   int
	PercentClaimed float64
}

// NewAreaSealedEvent creates a new AreaSealedEvent
func NewAreaSealedEvent(gameID string, meta EventMetadata, hazard core.Cell, trailLength int, res core.SealResult, percent float64) *AreaSealedEvent {
	return &AreaSealedEvent{
		BaseEvent:      newBase(TypeAreaSealed, gameID),
		Metadata:       meta,
		Branch:         res.Branch.String(),
		Hazard:         hazard,
		TrailLength:    trailLength,
		NewlyClaimed:   res.NewlyClaimed,
		PercentClaimed: percent,
	}
}

// PushAbortedEvent is published when the qix crosses an unsealed trail
type PushAbortedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	Hazard      core.Cell
	TrailLength int
}

// NewPushAbortedEvent creates a new PushAbortedEvent
func NewPushAbortedEvent(gameID string, meta EventMetadata, hazard core.Cell, trailLength int) *PushAbortedEvent {
	return &PushAbortedEvent{
		BaseEvent:   newBase(TypePushAborted, gameID),
		Metadata:    meta,
		Hazard:      hazard,
		TrailLength: trailLength,
	}
}

// PushCancelledEvent is published when a spark reaches the start of a push
type PushCancelledEvent struct {
	BaseEvent
	Metadata  EventMetadata
	PushStart core.Cell
}

// NewPushCancelledEvent creates a new PushCancelledEvent
func NewPushCancelledEvent(gameID string, meta EventMetadata, pushStart core.Cell) *PushCancelledEvent {
	return &PushCancelledEvent{
		BaseEvent: newBase(TypePushCancelled, gameID),
		Metadata:  meta,
		PushStart: pushStart,
	}
}

// LifeLostEvent is published whenever the player loses a life
type LifeLostEvent struct {
	BaseEvent
	Metadata       EventMetadata
	Cause          string
	LivesRemaining int
}

// NewLifeLostEvent creates a new LifeLostEvent
func NewLifeLostEvent(gameID string, meta EventMetadata, cause string, livesRemaining int) *LifeLostEvent {
	return &LifeLostEvent{
		BaseEvent:      newBase(TypeLifeLost, gameID),
		Metadata:       meta,
		Cause:          cause,
		LivesRemaining: livesRemaining,
	}
}

// LevelWonEvent is published when the claimed share reaches the target
type LevelWonEvent struct {
	BaseEvent
	Metadata       EventMetadata
	PercentClaimed float64
	TargetPercent  float64
}

// NewLevelWonEvent creates a new LevelWonEvent
func NewLevelWonEvent(gameID string, meta EventMetadata, percent, target float64) *LevelWonEvent {
	return &LevelWonEvent{
		BaseEvent:      newBase(TypeLevelWon, gameID),
		Metadata:       meta,
		PercentClaimed: percent,
		TargetPercent:  target,
	}
}

// GameOverEvent is published when the last life is lost
type GameOverEvent struct {
	BaseEvent
	Metadata       EventMetadata
	PercentClaimed float64
	Duration       time.Duration
}

// NewGameOverEvent creates a new GameOverEvent
func NewGameOverEvent(gameID string, meta EventMetadata, percent float64, duration time.Duration) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent:      newBase(TypeGameOver, gameID),
		Metadata:       meta,
		PercentClaimed: percent,
		Duration:       duration,
	}
}

// StateTransitionEvent is published when the phase machine changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
