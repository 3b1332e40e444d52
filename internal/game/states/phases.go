package states

import "fmt"

// Phase is the coarse game phase driving whether ticks are processed
type Phase int

const (
	// PhasePlaying - ticks advance entities and the grid
	PhasePlaying Phase = iota

	// PhaseLifeLost - paused after a hit, waiting for the player to resume
	PhaseLifeLost

	// PhaseLevelWon - claimed share reached the target, waiting to start the next level
	PhaseLevelWon

	// PhaseGameOver - no lives left
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseLifeLost:
		return "LifeLost"
	case PhaseLevelWon:
		return "LevelWon"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no transition leaves this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanTick returns true if the game loop should advance in this phase
func (p Phase) CanTick() bool {
	return p == PhasePlaying
}

// CanResume returns true if a resume request moves this phase back to playing
func (p Phase) CanResume() bool {
	return p == PhaseLifeLost || p == PhaseLevelWon
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhasePlaying:
		return []Phase{PhaseLifeLost, PhaseLevelWon, PhaseGameOver}
	case PhaseLifeLost:
		return []Phase{PhasePlaying}
	case PhaseLevelWon:
		return []Phase{PhasePlaying}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a Phase
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "Playing":
		return PhasePlaying, nil
	case "LifeLost":
		return PhaseLifeLost, nil
	case "LevelWon":
		return PhaseLevelWon, nil
	case "GameOver":
		return PhaseGameOver, nil
	default:
		return PhasePlaying, fmt.Errorf("unknown phase %q", s)
	}
}
