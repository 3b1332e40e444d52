package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/qixgrid/internal/config"
	"github.com/mitchelldurbincs/qixgrid/internal/game"
	"github.com/mitchelldurbincs/qixgrid/internal/game/core"
	"github.com/mitchelldurbincs/qixgrid/internal/game/events"
	"github.com/mitchelldurbincs/qixgrid/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/qixgrid/internal/game/scripted"
	"github.com/mitchelldurbincs/qixgrid/internal/game/states"
)

// maxTicks stops a script that can never reach the target.
const maxTicks = 100_000

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	cfg := config.Get()
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	log.Info().
		Str("config_file", config.ConfigFilePath()).
		Str("env", *env).
		Int("width_tiles", cfg.Game.WidthTiles).
		Int("height_tiles", cfg.Game.HeightTiles).
		Msg("Configuration loaded")

	var showGrid atomic.Bool
	showGrid.Store(cfg.Development.ShowGrid)
	config.WatchConfig(func(next *config.Config, err error) {
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid config reload")
			return
		}
		showGrid.Store(next.Development.ShowGrid)
		log.Info().Bool("show_grid", next.Development.ShowGrid).Msg("Config reloaded")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, &showGrid); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(ctx context.Context, cfg *config.Config, showGrid *atomic.Bool) error {
	w, h := cfg.Game.WidthTiles, cfg.Game.HeightTiles

	bus := events.NewEventBus()
	if cfg.Development.VerboseLogging {
		sub := subscribers.NewLoggerSubscriber("demo-logger", log.Logger, zerolog.InfoLevel)
		sub.SetDevMode(true)
		bus.Subscribe(sub)
	}

	var g *game.Game
	bus.SubscribeFunc(events.TypeAreaSealed, func(e events.Event) {
		if showGrid.Load() {
			fmt.Printf("%s\n%s\n", e.(*events.AreaSealedEvent).Branch, g.World())
		}
	})

	player := scripted.NewPlayer(20*time.Millisecond, demoCuts(w, h)...)
	qix := scripted.NewQix(50*time.Millisecond, scripted.Polyline(
		core.NewCell(w/9, h*5/7),
		core.NewCell(w*2/9, h*5/7),
		core.NewCell(w/9, h*5/7),
	)...)
	sparx := scripted.NewSparx(100*time.Millisecond, scripted.Line(
		core.NewCell(1, h-1),
		core.NewCell(w/9, h-1),
	)...)

	g, err := game.NewGame(ctx, game.GameConfig{
		TileSize:      cfg.Game.TileSize,
		Width:         w,
		Height:        h,
		Lives:         cfg.Game.Lives,
		TargetPercent: cfg.Game.TargetPercent,
		Logger:        log.Logger,
		EventBus:      bus,
	}, player, qix, sparx)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	dt := time.Second / time.Duration(cfg.Game.FPS)
	for i := 0; i < maxTicks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := g.Update(dt); err != nil {
			if errors.Is(err, game.ErrGameOver) {
				break
			}
			return err
		}

		switch g.Phase() {
		case states.PhaseLifeLost:
			if err := g.Resume(); err != nil {
				return err
			}
			continue
		case states.PhaseLevelWon, states.PhaseGameOver:
		default:
			if !player.Done() {
				continue
			}
			log.Warn().Msg("Script finished below the target")
		}
		break
	}

	st := g.Stats()
	log.Info().
		Str("game_id", g.ID()).
		Str("phase", g.Phase().String()).
		Int("ticks", g.Tick()).
		Int("lives", g.Lives()).
		Float64("percent_claimed", g.World().PercentClaimed()).
		Int("seals", st.Seals).
		Int("cells_claimed", st.CellsClaimed).
		Int("lives_lost", st.LivesLost).
		Msg("Demo finished")
	return nil
}

// demoCuts returns two pushes: a horizontal cut a third of the way down, then
// a vertical cut from that new edge to the bottom, two thirds across.
func demoCuts(w, h int) [][]core.Cell {
	row, col := h/3, w*2/3
	return [][]core.Cell{
		scripted.Line(core.NewCell(0, row), core.NewCell(w-1, row)),
		scripted.Line(core.NewCell(col, row), core.NewCell(col, h-1)),
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})
}
