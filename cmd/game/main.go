// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gamestate/internal/config"
	"go-gamestate/internal/event"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/logging"
	"go-gamestate/internal/state"
	"go-gamestate/internal/telemetry"
	"go-gamestate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/atomic"
)

var version = "dev"

type options struct {
	configPath string
	logLevel   string
	start      string
	pprofAddr  string
}

func main() {
	var opts options
	pflag.StringVarP(&opts.configPath, "config", "c", "", "path to the TOML settings file")
	pflag.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pflag.StringVar(&opts.start, "start", "", "start screen override (menu, play)")
	pflag.StringVar(&opts.pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	pflag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(settings.Log.Level, settings.Log.Path)
	if err != nil {
		return err
	}
	defer logger.Close()

	if opts.pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", slog.Any("error", http.ListenAndServe(opts.pprofAddr, nil)))
		}()
	}

	text, err := locale.New(settings.Game.Locale)
	if err != nil {
		return err
	}
	fonts, err := ui.LoadFonts()
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher()
	if settings.Telemetry.Enabled {
		shutdown, err := setupTelemetry(settings.Telemetry.Path, dispatcher)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", slog.Any("error", err))
			}
		}()
	}

	quit := atomic.NewBool(false)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		quit.Store(true)
	}()

	env := &state.Env{
		Fonts:  fonts,
		Text:   text,
		Width:  float64(settings.Window.Width),
		Height: float64(settings.Window.Height),
	}
	states := buildStates(env, settings, func() { quit.Store(true) })
	manager, err := state.NewManager(states,
		state.WithLogger(logger.Logger),
		state.WithDispatcher(dispatcher),
	)
	if err != nil {
		return err
	}

	logger.Info("starting",
		slog.String("version", version),
		slog.String("start", string(manager.CurrentID())),
		slog.String("locale", text.Tag().String()),
	)

	app := NewAppGame(manager, quit, settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Window.TPS)
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop stopped", slog.Any("error", err))
		return err
	}
	logger.Info("bye", slog.Any("stack", manager.Stack()))
	return nil
}

func loadSettings(opts options) (config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if opts.logLevel != "" {
		settings.Log.Level = opts.logLevel
	}
	if opts.start != "" {
		settings.Game.Start = opts.start
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func setupTelemetry(path string, dispatcher *event.Dispatcher) (func(context.Context) error, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry file: %w", err)
	}
	providers, err := telemetry.Setup(file, "go-gamestate", version)
	if err != nil {
		file.Close()
		return nil, err
	}
	recorder, err := telemetry.New(
		telemetry.WithTracerProvider(providers.Tracer),
		telemetry.WithMeterProvider(providers.Meter),
	)
	if err != nil {
		file.Close()
		return nil, err
	}
	recorder.Subscribe(dispatcher)

	return func(ctx context.Context) error {
		err := providers.Shutdown(ctx)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return err
	}, nil
}
