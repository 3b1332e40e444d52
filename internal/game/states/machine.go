package states

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/qixgrid/internal/game/events"
)

// Transition represents a phase change in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Machine tracks the current phase, enforces the transition table and keeps a
// bounded history. It is driven from the game loop and is not locked.
type Machine struct {
	gameID         string
	current        Phase
	history        []Transition
	maxHistorySize int
	bus            events.Publisher
	logger         zerolog.Logger
	now            func() time.Time
}

// NewMachine creates a machine starting in PhasePlaying. bus may be nil.
func NewMachine(gameID string, bus events.Publisher, logger zerolog.Logger) *Machine {
	return &Machine{
		gameID:         gameID,
		current:        PhasePlaying,
		history:        make([]Transition, 0, 16),
		maxHistorySize: 256,
		bus:            bus,
		logger:         logger.With().Str("component", "phase_machine").Logger(),
		now:            time.Now,
	}
}

// Current returns the current phase
func (m *Machine) Current() Phase {
	return m.current
}

// TransitionTo moves to target if the table allows it
func (m *Machine) TransitionTo(target Phase, reason string) error {
	if !m.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, target)
	}

	previous := m.current
	m.current = target
	m.addToHistory(Transition{
		From:      previous,
		To:        target,
		Timestamp: m.now(),
		Reason:    reason,
	})

	if m.bus != nil {
		m.bus.Publish(events.NewStateTransitionEvent(m.gameID, previous.String(), target.String(), reason))
	}

	m.logger.Info().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Phase transition completed")

	return nil
}

func (m *Machine) addToHistory(transition Transition) {
	m.history = append(m.history, transition)
	if len(m.history) > m.maxHistorySize {
		m.history = m.history[len(m.history)-m.maxHistorySize:]
	}
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (m *Machine) CanTransitionTo(target Phase) bool {
	return m.current.CanTransitionTo(target)
}
