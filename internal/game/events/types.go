package events

import (
	"time"
)

// Event is anything published on the bus. Every event belongs to one game.
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields shared by all territory events
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// EventMetadata locates an event in the run: which level and which tick of
// the game loop produced it.
type EventMetadata struct {
	Level int `json:"level"`
	Tick  int `json:"tick"`
}

// EventHandler processes one event
type EventHandler func(Event)

// Subscriber receives every event whose type it is interested in.
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the side of the bus the game loop and phase machine see.
type Publisher interface {
	Publish(Event)
}
