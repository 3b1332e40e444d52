package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/qixgrid/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	// If no filter is set, interested in all events
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	// Create the base event log
	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height).
			Int("lives", e.Lives).
			Float64("target_percent", e.TargetPercent)

	case *events.AreaSealedEvent:
		logEvent.
			Int("level", e.Metadata.Level).
			Int("tick", e.Metadata.Tick).
			Str("branch", e.Branch).
			Int("hazard_x", e.Hazard.X).
			Int("hazard_y", e.Hazard.Y).
			Int("trail_length", e.TrailLength).
			Int("newly_claimed", e.NewlyClaimed).
			Float64("percent_claimed", e.PercentClaimed)

	case *events.PushAbortedEvent:
		logEvent.
			Int("tick", e.Metadata.Tick).
			Int("hazard_x", e.Hazard.X).
			Int("hazard_y", e.Hazard.Y).
			Int("trail_length", e.TrailLength)

	case *events.PushCancelledEvent:
		logEvent.
			Int("tick", e.Metadata.Tick).
			Int("push_start_x", e.PushStart.X).
			Int("push_start_y", e.PushStart.Y)

	case *events.LifeLostEvent:
		logEvent.
			Int("tick", e.Metadata.Tick).
			Str("cause", e.Cause).
			Int("lives_remaining", e.LivesRemaining)

	case *events.LevelWonEvent:
		logEvent.
			Int("level", e.Metadata.Level).
			Float64("percent_claimed", e.PercentClaimed).
			Float64("target_percent", e.TargetPercent)

	case *events.GameOverEvent:
		logEvent.
			Int("level", e.Metadata.Level).
			Float64("percent_claimed", e.PercentClaimed).
			Dur("duration", e.Duration)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	// Send the log
	logEvent.Msg("Game event")
}
