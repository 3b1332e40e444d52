package events

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus delivers events synchronously on the publishing goroutine.
// Subscribers are called in registration order, then the function handlers
// registered for the event's type, also in order. Registration may happen
// from any goroutine.
type EventBus struct {
	mu       sync.RWMutex
	subs     []Subscriber
	handlers map[string][]EventHandler
	logger   zerolog.Logger
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
		logger:   log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers s. A subscriber with the same ID is replaced in place.
func (eb *EventBus) Subscribe(s Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, existing := range eb.subs {
		if existing.ID() == s.ID() {
			eb.subs[i] = s
			eb.logger.Debug().Str("subscriber_id", s.ID()).Msg("Subscriber replaced")
			return
		}
	}
	eb.subs = append(eb.subs, s)
	eb.logger.Debug().Str("subscriber_id", s.ID()).Msg("Subscriber added to event bus")
}

// SubscribeFunc registers handler for one event type
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	eb.logger.Debug().
		Str("event_type", eventType).
		Int("handlers", len(eb.handlers[eventType])).
		Msg("Function handler added to event bus")
}

// Publish delivers event to every interested subscriber and handler. The
// recipient lists are copied under the read lock and called after it is
// released, so a handler may subscribe without deadlocking; new recipients
// see the next event, not this one. A panicking recipient is logged and
// skipped.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.RLock()
	subs := make([]Subscriber, 0, len(eb.subs))
	for _, s := range eb.subs {
		if s.InterestedIn(eventType) {
			subs = append(subs, s)
		}
	}
	handlers := append([]EventHandler(nil), eb.handlers[eventType]...)
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Int("recipients", len(subs)+len(handlers)).
		Msg("Publishing event")

	for _, s := range subs {
		eb.deliver(eventType, s.ID(), func() { s.HandleEvent(event) })
	}
	for _, h := range handlers {
		eb.deliver(eventType, "func", func() { h(event) })
	}
}

func (eb *EventBus) deliver(eventType, recipient string, call func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("event_type", eventType).
				Str("recipient", recipient).
				Interface("panic", r).
				Msg("Event recipient panicked")
		}
	}()
	call()
}
