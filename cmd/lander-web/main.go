// Command lander-web is the browser entry point. Build it with
// GOOS=js GOARCH=wasm and load it from index.html; it runs the ebiten host
// with the default configuration and fills the page.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/lander/internal/config"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/web"
	"github.com/san-kum/lander/internal/world"
)

var newLogger = func() (logger.Logger, error) {
	return logger.NewWithComponent(logger.DevelopmentConfig(), "web")
}

func main() {
	os.Exit(start(os.Stderr))
}

// start runs the host and returns the exit status. Failures before the
// logger exists are written to stderr, which the browser shows as
// console errors.
func start(stderr io.Writer) int {
	cfg := config.DefaultConfig()
	cfg.Host = "web"

	log, err := newLogger()
	if err != nil {
		fmt.Fprintf(stderr, "lander-web: startup failed: %v\n", err)
		return 1
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("startup failed", logger.F("error", err))
		return 1
	}
	return 0
}

func run(cfg *config.Config, log logger.Logger) error {
	opts, err := cfg.InputOptions()
	if err != nil {
		return err
	}
	return web.Run(world.NewPanel(), web.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Input:  opts,
		Log:    log,
	})
}
