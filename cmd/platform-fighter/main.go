package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/platform-fighter/config"
	"github.com/lixenwraith/platform-fighter/core"
	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/parameter"
)

var (
	configFlag    = flag.String("config", "", "YAML config file, defaults apply when empty")
	stageFlag     = flag.String("stage", "", "stage YAML file, overrides the config")
	fighterFlag   = flag.String("fighter", "", "fighter preset, overrides the config")
	debugFlag     = flag.Bool("debug", false, "write logs to logs/platform-fighter.log")
	telemetryFlag = flag.String("telemetry", "", "websocket telemetry listen address, e.g. 127.0.0.1:9300")
	muteFlag      = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "platform-fighter: %v\n", err)
		os.Exit(2)
	}

	logger, logFile := setupLogging(cfg.Logging.Debug, cfg.Logging.Level, cfg.Logging.Format)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "platform-fighter: stdin and stdout must be a terminal")
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", "error", err)
		fmt.Fprintf(os.Stderr, "platform-fighter: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// loadConfig layers command-line flags over the config file
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *stageFlag != "" {
		cfg.Stage.File = *stageFlag
	}
	if *fighterFlag != "" {
		if _, err := fighter.Preset(*fighterFlag); err != nil {
			return nil, err
		}
		cfg.Fighter.Preset = *fighterFlag
	}
	if *telemetryFlag != "" {
		cfg.Telemetry.Addr = *telemetryFlag
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetTerminalReset(screen.Fini)
	defer func() {
		core.SetTerminalReset(nil)
		screen.Fini()
	}()
	defer func() {
		core.HandleCrash(recover())
	}()
	screen.HideCursor()

	a, err := newApp(cfg, screen, nil, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.start(ctx)
	defer a.stop()

	events := make(chan tcell.Event, parameter.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	ticker := time.NewTicker(parameter.RenderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				logger.Info("quit", "frame", a.game.Frame())
				return nil
			}
		case <-ticker.C:
			a.tick()
		}
	}
}
