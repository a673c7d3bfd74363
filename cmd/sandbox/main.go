// Command sandbox replays a scripted XR input session against the
// interaction layer and logs the final state of every interactable.
//
// Usage:
//
//	sandbox -config sandbox.yaml [-scene scene.yaml] [-log-level debug] [-linger]
//
// A scene path in the config is resolved relative to the config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/zeusync/interactionsdk/internal/config"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file path")
		scenePath  = flag.String("scene", "", "Scene file, overrides the config")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
		linger     = flag.Bool("linger", false, "Keep ticking after the script until interrupted")
	)
	flag.Parse()

	if err := run(*configPath, *scenePath, *logLevel, *linger); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run(configPath, scenePath, logLevel string, linger bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if cfg.Scene != "" && !filepath.IsAbs(cfg.Scene) {
			cfg.Scene = filepath.Join(filepath.Dir(configPath), cfg.Scene)
		}
	}
	if scenePath != "" {
		cfg.Scene = scenePath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	cfg.Loop.Linger = cfg.Loop.Linger || linger
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.Provide().With(log.Component("sandbox"))
	runErr := a.Run(ctx)
	for _, c := range a.Snapshot() {
		logger.Info("interactable",
			log.String("name", c.Name),
			log.String("label", c.Label),
			log.Stringer("state", c.State),
			log.Int("selections", c.Selections),
		)
	}
	return runErr
}
