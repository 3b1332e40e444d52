package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
	"github.com/mitchelldurbincs/qixgrid/internal/game/events"
	"github.com/mitchelldurbincs/qixgrid/internal/game/states"
)

// GameConfig holds everything needed to start a game
type GameConfig struct {
	TileSize      int
	Width         int
	Height        int
	Lives         int
	TargetPercent float64 // percent of the grid, (0, 100]
	Logger        zerolog.Logger
	EventBus      *events.EventBus // optional; a private bus is created when nil
}

func (c GameConfig) validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Lives < 1 {
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	}
	if c.TargetPercent <= 0 || c.TargetPercent > 100 {
		return fmt.Errorf("%w: target percent %.2f out of range", ErrInvalidConfig, c.TargetPercent)
	}
	return nil
}

// Game is the host loop around the grid engine. It owns the world, asks the
// collaborators for their positions once per tick and applies the rules:
// trail hits, sparx hits, seals and the level target.
type Game struct {
	id      string
	cfg     GameConfig
	world   *core.World
	player  Player
	qix     Qix
	sparx   Sparx
	machine *states.Machine
	bus     *events.EventBus
	logger  zerolog.Logger

	lives     int
	level     int
	tick      int
	startedAt time.Time
	stats     Stats
}

// NewGame validates cfg, builds the first level's world and publishes
// game.started.
func NewGame(ctx context.Context, cfg GameConfig, player Player, qix Qix, sparx Sparx) (*Game, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewEventBus()
	}

	id := uuid.NewString()
	logger := cfg.Logger.With().Str("component", "game").Str("game_id", id).Logger()

	g := &Game{
		id:        id,
		cfg:       cfg,
		player:    player,
		qix:       qix,
		sparx:     sparx,
		bus:       bus,
		logger:    logger,
		lives:     cfg.Lives,
		level:     1,
		startedAt: time.Now(),
	}
	g.world = g.newWorld()
	g.machine = states.NewMachine(id, bus, logger)

	bus.Publish(events.NewGameStartedEvent(id, cfg.Width, cfg.Height, cfg.Lives, cfg.TargetPercent))

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("lives", cfg.Lives).
		Float64("target_percent", cfg.TargetPercent).
		Msg("Game started")

	return g, nil
}

func (g *Game) newWorld() *core.World {
	w := core.NewWorld(g.cfg.TileSize, g.cfg.Width, g.cfg.Height)
	w.SetLogger(g.logger)
	return w
}

// Public accessors
func (g *Game) ID() string               { return g.id }
func (g *Game) World() *core.World       { return g.world }
func (g *Game) Phase() states.Phase      { return g.machine.Current() }
func (g *Game) Lives() int               { return g.lives }
func (g *Game) Level() int               { return g.level }
func (g *Game) Tick() int                { return g.tick }
func (g *Game) Bus() *events.EventBus    { return g.bus }
func (g *Game) Machine() *states.Machine { return g.machine }

func (g *Game) meta() events.EventMetadata {
	return events.EventMetadata{Level: g.level, Tick: g.tick}
}

// Update advances the game by one tick. Outside PhasePlaying it does nothing,
// except in PhaseGameOver where it returns ErrGameOver.
func (g *Game) Update(dt time.Duration) error {
	phase := g.machine.Current()
	if phase.IsTerminal() {
		return ErrGameOver
	}
	if !phase.CanTick() {
		return nil
	}
	g.tick++

	g.player.Update(dt, g.world)
	g.qix.Update(dt, g.world)
	g.sparx.Update(dt, g.world)

	pushing := g.player.IsPushing()
	if pushing {
		g.world.ApplyTrail(g.player.Trail())
	}

	if pushing && g.world.QixHitsTrail(g.qix.Cell(), g.player.Trail()) {
		g.bus.Publish(events.NewPushAbortedEvent(g.id, g.meta(), g.qix.Cell(), len(g.player.Trail())))
		return g.loseLife("qix", true)
	}

	if g.sparx.HitsPlayer(g.player.Cell()) {
		return g.loseLife("sparx", false)
	}

	if pushing && g.sparx.HitsPushStart(g.player.PushStartCell()) {
		g.cancelPush()
		return nil
	}

	if pushing && g.trailReachedEdge() {
		g.seal()
	}

	if pct := g.world.PercentClaimed(); pct >= g.cfg.TargetPercent {
		g.stats.LevelsWon++
		g.bus.Publish(events.NewLevelWonEvent(g.id, g.meta(), pct, g.cfg.TargetPercent))
		if err := g.machine.TransitionTo(states.PhaseLevelWon, fmt.Sprintf("claimed %.1f%%", pct)); err != nil {
			return fmt.Errorf("level won: %w", err)
		}
	}

	return nil
}

func (g *Game) trailReachedEdge() bool {
	return g.player.OnEdge() && len(g.player.Trail()) > 0
}

func (g *Game) seal() {
	trail := append([]core.Cell(nil), g.player.Trail()...)
	g.player.StopPush()

	hazard := g.qix.Cell()
	trailLength := len(trail)
	g.world.ApplyTrail(trail)
	res := g.world.SealArea(hazard, &trail)
	g.stats.recordSeal(res)

	g.bus.Publish(events.NewAreaSealedEvent(g.id, g.meta(), hazard, trailLength, res, g.world.PercentClaimed()))
}

// cancelPush drops the in-progress trail without costing a life.
func (g *Game) cancelPush() {
	start := g.player.PushStartCell()
	g.world.ResetPush()
	g.player.StopPush()
	g.stats.PushesCancelled++
	g.bus.Publish(events.NewPushCancelledEvent(g.id, g.meta(), start))
}

func (g *Game) loseLife(cause string, cancelPush bool) error {
	if cancelPush {
		g.world.ResetPush()
		g.player.ResetAfterHit()
		g.stats.PushesAborted++
	}

	g.lives--
	g.stats.LivesLost++
	g.bus.Publish(events.NewLifeLostEvent(g.id, g.meta(), cause, g.lives))

	if g.lives <= 0 {
		g.bus.Publish(events.NewGameOverEvent(g.id, g.meta(), g.world.PercentClaimed(), time.Since(g.startedAt)))
		if err := g.machine.TransitionTo(states.PhaseGameOver, "out of lives"); err != nil {
			return fmt.Errorf("game over: %w", err)
		}
		return nil
	}

	if err := g.machine.TransitionTo(states.PhaseLifeLost, "hit by "+cause); err != nil {
		return fmt.Errorf("life lost: %w", err)
	}
	return nil
}

// Resume continues after a lost life, or starts the next level on a fresh
// grid after a won one.
func (g *Game) Resume() error {
	phase := g.machine.Current()
	if !phase.CanResume() {
		return fmt.Errorf("%w: phase %s", ErrCannotResume, phase)
	}

	reason := "resume after hit"
	if phase == states.PhaseLevelWon {
		g.level++
		g.world = g.newWorld()
		reason = fmt.Sprintf("start level %d", g.level)
	}

	return g.machine.TransitionTo(states.PhasePlaying, reason)
}
