package main

import (
	"context"
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lander/internal/config"
	"github.com/san-kum/lander/internal/gui"
	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/render"
	"github.com/san-kum/lander/internal/session"
	"github.com/san-kum/lander/internal/tui"
	"github.com/san-kum/lander/internal/web"
	"github.com/san-kum/lander/internal/world"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = host
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("touch-policy") {
		cfg.TouchPolicy = policy
	}
	if flags.Changed("trace") {
		cfg.Trace.Enabled = trace
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(cfg *config.Config) *session.Store {
	return session.New(cfg.DataDir)
}

func newLogger(cfg *config.Config, component string) (logger.Logger, error) {
	lc := cfg.Log
	// the terminal host owns stdout and stderr
	if cfg.Host == "tui" && lc.File == "" {
		lc.File = "lander.log"
	}
	return logger.NewWithComponent(lc, component)
}

func runHost(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	if err := startHost(cfg, log); err != nil {
		log.Error("startup failed", logger.F("error", err))
		return err
	}
	return nil
}

func startHost(cfg *config.Config, log logger.Logger) error {
	opts, err := cfg.InputOptions()
	if err != nil {
		return err
	}

	var observers []input.Observer
	var rec *session.Recorder
	if cfg.Trace.Enabled {
		st := openStore(cfg)
		if err := st.Init(); err != nil {
			return fmt.Errorf("trace store: %w", err)
		}
		rec = session.NewRecorder(cfg.Host, opts.Policy)
		observers = append(observers, rec)
		defer func() {
			if err := rec.Save(st); err != nil {
				log.Error("saving session failed", logger.F("error", err))
				return
			}
			log.Info("session saved", logger.F("id", rec.ID()), logger.F("events", len(rec.Events())))
		}()
	}

	panel := world.NewPanel()
	switch cfg.Host {
	case "tui":
		return tui.Run(panel, tui.Options{
			FPS:       cfg.FPS,
			KeyHold:   cfg.KeyHold,
			Input:     opts,
			Log:       log,
			Observers: observers,
		})
	case "gui":
		return gui.Run(panel, gui.Options{
			Width:     cfg.Window.Width,
			Height:    cfg.Window.Height,
			Title:     cfg.Window.Title,
			FPS:       cfg.FPS,
			Input:     opts,
			Log:       log,
			Observers: observers,
		})
	case "web":
		return web.Run(panel, web.Options{
			Width:     cfg.Window.Width,
			Height:    cfg.Window.Height,
			Title:     cfg.Window.Title,
			Input:     opts,
			Log:       log,
			Observers: observers,
		})
	}
	return fmt.Errorf("unknown host %q", cfg.Host)
}

func replaySession(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "replay")
	if err != nil {
		return err
	}
	defer log.Sync()

	st := openStore(cfg)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	events, err := st.LoadEvents(args[0])
	if err != nil {
		return err
	}

	panel := world.NewPanel(world.WithHistory(240))
	summary, err := replay(cmd.Context(), panel, events, cfg.FPS, speed, log)
	if err != nil {
		return err
	}

	fmt.Printf("session %s (%s, %s touch)\n", meta.ID, meta.Host, meta.Policy)
	fmt.Printf("events %d  frames %d  held at end %s\n", len(events), summary.Frames, summary.Held)
	if len(summary.History) > 1 {
		fmt.Println(asciigraph.Plot(summary.History,
			asciigraph.Height(5),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(3),
			asciigraph.Caption("engines firing per frame"),
		))
	}
	return nil
}

// replay drives frames for panel while the recorded events are reissued,
// and stops the frame loop once the replay ends.
func replay(ctx context.Context, panel *world.Panel, events []session.Event, fps int, speed float64, log logger.Logger) (world.Snapshot, error) {
	ticker, err := render.NewTicker(fps)
	if err != nil {
		return world.Snapshot{}, err
	}
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driver := render.NewDriver(panel, &render.Size{}, func() (int, int) { return 0, 0 })
	frames := make(chan error, 1)
	go func() { frames <- driver.Run(ctx, ticker) }()

	start := time.Now()
	replayErr := session.Replay(ctx, world.Logged(panel, log), events, speed)
	cancel()
	<-frames

	log.Info("replay finished", logger.F("elapsed", time.Since(start)), logger.F("frames", int64(driver.Frames())))
	return panel.Snapshot(), replayErr
}
