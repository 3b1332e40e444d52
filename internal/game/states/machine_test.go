package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/qixgrid/internal/game/events"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhaseLifeLost, "LifeLost"},
		{PhaseLevelWon, "LevelWon"},
		{PhaseGameOver, "GameOver"},
		{Phase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhase_Properties(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, PhaseGameOver.IsTerminal())
		assert.False(t, PhasePlaying.IsTerminal())
		assert.False(t, PhaseLifeLost.IsTerminal())
	})

	t.Run("CanTick", func(t *testing.T) {
		assert.True(t, PhasePlaying.CanTick())
		assert.False(t, PhaseLifeLost.CanTick())
		assert.False(t, PhaseLevelWon.CanTick())
		assert.False(t, PhaseGameOver.CanTick())
	})

	t.Run("CanResume", func(t *testing.T) {
		assert.True(t, PhaseLifeLost.CanResume())
		assert.True(t, PhaseLevelWon.CanResume())
		assert.False(t, PhasePlaying.CanResume())
		assert.False(t, PhaseGameOver.CanResume())
	})
}

func TestPhase_Transitions(t *testing.T) {
	all := []Phase{PhasePlaying, PhaseLifeLost, PhaseLevelWon, PhaseGameOver}
	tests := []struct {
		from    Phase
		allowed []Phase
	}{
		{PhasePlaying, []Phase{PhaseLifeLost, PhaseLevelWon, PhaseGameOver}},
		{PhaseLifeLost, []Phase{PhasePlaying}},
		{PhaseLevelWon, []Phase{PhasePlaying}},
		{PhaseGameOver, []Phase{}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.AllowedTransitions())
			for _, target := range all {
				assert.Equal(t, contains(tt.allowed, target), tt.from.CanTransitionTo(target),
					"%s -> %s", tt.from, target)
			}
		})
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range []Phase{PhasePlaying, PhaseLifeLost, PhaseLevelWon, PhaseGameOver} {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePhase("Lobby")
	assert.Error(t, err)
}

func TestMachine_TransitionTo(t *testing.T) {
	bus := events.NewEventBus()
	var published []*events.StateTransitionEvent
	bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
		published = append(published, e.(*events.StateTransitionEvent))
	})

	m := NewMachine("test-game", bus, zerolog.Nop())
	assert.Equal(t, PhasePlaying, m.Current())

	require.NoError(t, m.TransitionTo(PhaseLifeLost, "qix hit trail"))
	assert.Equal(t, PhaseLifeLost, m.Current())

	err := m.TransitionTo(PhaseLevelWon, "not allowed")
	assert.Error(t, err)
	assert.Equal(t, PhaseLifeLost, m.Current())

	require.NoError(t, m.TransitionTo(PhasePlaying, "resume"))
	require.NoError(t, m.TransitionTo(PhaseGameOver, "no lives"))
	assert.False(t, m.CanTransitionTo(PhasePlaying))

	history := m.History()
	require.Len(t, history, 3)
	assert.Equal(t, PhasePlaying, history[0].From)
	assert.Equal(t, PhaseLifeLost, history[0].To)
	assert.Equal(t, "qix hit trail", history[0].Reason)
	assert.Equal(t, PhaseGameOver, history[2].To)

	require.Len(t, published, 3)
	assert.Equal(t, "test-game", published[0].GameID())
	assert.Equal(t, "Playing", published[0].FromPhase)
	assert.Equal(t, "LifeLost", published[0].ToPhase)
}

func TestMachine_HistoryBounded(t *testing.T) {
	m := NewMachine("g", nil, zerolog.Nop())
	m.maxHistorySize = 4

	for i := 0; i < 10; i++ {
		require.NoError(t, m.TransitionTo(PhaseLifeLost, "hit"))
		require.NoError(t, m.TransitionTo(PhasePlaying, "resume"))
	}

	history := m.History()
	assert.Len(t, history, 4)
	assert.Equal(t, PhasePlaying, history[3].To)

	// returned slice is a copy
	history[0].Reason = "changed"
	assert.NotEqual(t, "changed", m.History()[0].Reason)
}

func contains(phases []Phase, p Phase) bool {
	for _, candidate := range phases {
		if candidate == p {
			return true
		}
	}
	return false
}
