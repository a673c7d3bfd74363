// Package app wires the interaction layer into a runnable sandbox: a loop
// ticking the focus, action and ECS systems, and a driver replaying the
// scene's input script on the loop goroutine.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/interactionsdk/internal/adapters/ecs"
	"github.com/zeusync/interactionsdk/internal/config"
	"github.com/zeusync/interactionsdk/internal/core/actions"
	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/interactors"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/observability/trace"
	"github.com/zeusync/interactionsdk/internal/core/scene/loader"
	"github.com/zeusync/interactionsdk/internal/core/system"
	"github.com/zeusync/interactionsdk/internal/core/systems"
)

var ErrNilConfig = errors.New("app config is nil")

type Option func(*Options)

type Options struct {
	Linger  bool              // keep ticking after the script until the context is done
	Actions *actions.Registry // action factories used by the scene; built-ins when nil
}

// WithLinger keeps the loop running after the script finished.
func WithLinger(linger bool) Option {
	return func(o *Options) { o.Linger = linger }
}

func WithActions(registry *actions.Registry) Option {
	return func(o *Options) { o.Actions = registry }
}

// App owns every component of a sandbox session. Components are built in
// New and torn down in reverse order by Close.
type App struct {
	opts   Options
	logger log.Log

	bus      bus.EventBus
	recorder *trace.Recorder
	bridge   *ecs.Bridge
	service  *interaction.InteractionService
	input    *input.Simulator
	scene    *loader.World
	manager  *system.Manager
	loop     *system.Loop
}

// New builds the application for cfg and the scene description sc. A nil
// scene starts an empty session.
func New(cfg *config.Config, sc *loader.Scene, logger log.Log, opts ...Option) (a *App, err error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = log.NewNop()
	}
	if sc == nil {
		sc = &loader.Scene{}
	}
	a = &App{logger: logger.With(log.Component("app"))}
	a.opts.Linger = cfg.Loop.Linger
	for _, opt := range opts {
		opt(&a.opts)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close())
			a = nil
		}
	}()

	a.bus = bus.New()
	if cfg.Trace.Enabled {
		a.recorder, err = trace.NewFileRecorder(cfg.Trace.Path, logger)
		if err != nil {
			return a, err
		}
		a.bus.AddObserver(a.recorder)
	}

	a.bridge, err = ecs.NewBridge(donburi.NewWorld(), a.bus)
	if err != nil {
		return a, err
	}

	a.service = interaction.NewService(cfg.Interaction,
		interaction.WithLogger(logger),
		interaction.WithBus(a.bus),
		interaction.WithRegistrar(interactors.NewRegistrarFactory(interactors.WithLogger(logger))),
	)
	a.input = input.NewSimulator(input.NewRouter())

	a.scene, err = sc.Build(loader.Deps{
		Service: a.service,
		Actions: a.opts.Actions,
		Input:   a.input,
		Logger:  logger,
	})
	if err != nil {
		return a, fmt.Errorf("build scene: %w", err)
	}
	if err = a.service.Initialize(a.input); err != nil {
		return a, err
	}

	a.manager = system.NewManager(logger)
	for _, s := range []systems.System{
		systems.NewFocusSystem(a.service),
		systems.NewActionSystem(a.service),
		a.bridge,
	} {
		if err = a.manager.RegisterSystem(s); err != nil {
			return a, err
		}
	}
	a.loop, err = system.NewLoop(a.manager, cfg.Loop.TickRate, logger)
	if err != nil {
		return a, err
	}

	a.logger.Info("app initialized",
		log.Bool("trace", a.recorder != nil),
		log.Int("interactables", len(a.service.Interactables())),
		log.Int("interactors", len(a.service.Interactors())),
	)
	return a, nil
}

// Provide builds an App for the injector; the cleanup closes it.
func Provide(cfg *config.Config, sc *loader.Scene, logger log.Log) (*App, func(), error) {
	a, err := New(cfg, sc, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, func() {
		if err := a.Close(); err != nil {
			a.logger.Warn("close app", log.Error(err))
		}
	}, nil
}

func (a *App) Service() *interaction.InteractionService { return a.service }
func (a *App) Input() *input.Simulator { return a.input }
func (a *App) Scene() *loader.World { return a.scene }
func (a *App) Loop() *system.Loop { return a.loop }
func (a *App) ECS() *ecs.Bridge { return a.bridge }

// Run ticks the loop and replays the script. It returns the first script
// error, or nil once the script finished (or ctx is done when lingering).
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.loop.Run(gctx)
	})
	g.Go(func() error {
		err := a.runScript(gctx)
		if err != nil || !a.opts.Linger {
			cancel()
		}
		return err
	})
	return g.Wait()
}

func (a *App) runScript(ctx context.Context) error {
	for i, step := range a.scene.Script() {
		if n := step.Wait(); n > 0 {
			for range n {
				if err := a.loop.Do(ctx, func() {}); err != nil {
					return ignoreCanceled(err)
				}
			}
			continue
		}
		var applyErr error
		if err := a.loop.Do(ctx, func() { applyErr = a.scene.Apply(step) }); err != nil {
			return ignoreCanceled(err)
		}
		if applyErr != nil {
			return fmt.Errorf("script step %d (%s): %w", i, step, applyErr)
		}
		a.logger.Debug("script step applied", log.Int("step", i), log.Stringer("op", step))
	}
	a.logger.Info("script finished", log.Int("steps", len(a.scene.Script())))
	return nil
}

// Snapshot returns the mirrored state of every interactable, as seen by the
// ECS world. Call it after Run returned.
func (a *App) Snapshot() []ecs.Interactable {
	var out []ecs.Interactable
	a.bridge.Each(func(c ecs.Interactable) { out = append(out, c) })
	return out
}

// Close tears down in reverse construction order. It is safe on a partially
// built App.
func (a *App) Close() error {
	var errs []error
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.service != nil {
		a.service.Destroy()
	}
	if a.bridge != nil {
		errs = append(errs, a.bridge.Close())
	}
	if a.recorder != nil {
		a.bus.RemoveObserver(a.recorder)
		stats := a.recorder.Stats()
		a.logger.Info("trace closed",
			log.String("session", a.recorder.Session()),
			log.Int("records", int(stats.Records)),
		)
		errs = append(errs, a.recorder.Close())
	}
	return errors.Join(errs...)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, system.ErrLoopStopped) {
		return nil
	}
	return err
}
