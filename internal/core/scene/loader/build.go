package loader

import (
	"errors"
	"fmt"

	"github.com/zeusync/interactionsdk/internal/core/actions"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interactables"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
	"github.com/zeusync/interactionsdk/pkg/generic"
)

// Deps are the collaborators a scene is built against.
type Deps struct {
	Service interaction.Service
	Actions *actions.Registry
	Input   *input.Simulator
	Logger  log.Log
}

type source struct {
	spec       SourceSpec
	source     *input.BasicSource
	controller *input.BasicController // nil for generic sources
}

// World is a built scene. It is driven from the loop goroutine.
type World struct {
	deps         Deps
	logger       log.Log
	inputActions map[string]input.Action
	objects      *generic.OrderedMap[string, *interactables.Interactable]
	sources      *generic.OrderedMap[string, *source]
	selectors    []interface{ Destroy() }
	script       []Step
}

// Build creates every object and source of the scene. Sources are detected on
// the simulator unless marked otherwise, so an input system started afterwards
// finds them in its boot scan.
func (s *Scene) Build(deps Deps) (*World, error) {
	if deps.Service == nil {
		return nil, interaction.ErrServiceUnavailable
	}
	if deps.Input == nil {
		return nil, interaction.ErrInputSystemUnavailable
	}
	if deps.Actions == nil {
		deps.Actions = actions.NewRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = log.NewNop()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		deps:         deps,
		logger:       deps.Logger.With(log.Component("scene")),
		inputActions: s.InputActions,
		objects:      generic.NewOrderedMap[string, *interactables.Interactable](),
		sources:      generic.NewOrderedMap[string, *source](),
		script:       s.Script,
	}
	for _, spec := range s.Objects {
		if err := w.buildObject(spec); err != nil {
			w.Destroy()
			return nil, fmt.Errorf("object %s: %w", spec.Name, err)
		}
	}
	for _, spec := range s.Sources {
		if err := w.buildSource(spec); err != nil {
			w.Destroy()
			return nil, fmt.Errorf("source %s: %w", spec.Name, err)
		}
	}
	w.logger.Info("scene built",
		log.Int("objects", w.objects.Len()),
		log.Int("sources", w.sources.Len()),
		log.Int("steps", len(w.script)),
	)
	return w, nil
}

func (w *World) buildObject(spec ObjectSpec) error {
	obj := scene.NewObject(spec.Name)
	obj.Transform.SetPosition(spec.Position)
	if spec.Material != "" {
		obj.Renderer = scene.NewMeshRenderer(scene.Material{Name: spec.Material})
	}
	if spec.Rigidbody != nil {
		obj.Body = &physics.Body{Kinematic: spec.Rigidbody.Kinematic, Gravity: spec.Rigidbody.Gravity}
	}

	attached := make([]interaction.Action, 0, len(spec.Actions))
	for _, a := range spec.Actions {
		action, err := w.deps.Actions.New(a.Type, a.Params)
		if err != nil {
			return err
		}
		attached = append(attached, action)
	}

	opts := []interactables.Option{
		interactables.WithLabel(spec.Label),
		interactables.WithCapabilities(or(spec.NearCapable, true), or(spec.FarCapable, true)),
		interactables.WithNearInteraction(or(spec.NearInteraction, true)),
		interactables.WithFarInteraction(or(spec.FarInteraction, true)),
		interactables.WithActions(attached...),
		interactables.WithRouter(w.deps.Input.Router()),
		interactables.WithLogger(w.deps.Logger),
	}
	if spec.InputAction != "" {
		action, err := w.resolveAction(spec.InputAction)
		if err != nil {
			return err
		}
		opts = append(opts, interactables.WithInputAction(action))
	}

	it, err := interactables.New(w.deps.Service, obj, opts...)
	if err != nil {
		return err
	}
	w.objects.Set(spec.Name, it)

	if spec.Select {
		sel, err := interactables.NewSelectInteractable(it)
		if err != nil {
			return err
		}
		w.selectors = append(w.selectors, sel)
	}
	if spec.Grab {
		grab, err := interactables.NewGrabInteractable(it)
		if err != nil {
			return err
		}
		w.selectors = append(w.selectors, grab)
	}
	return nil
}

func (w *World) buildSource(spec SourceSpec) error {
	pointers := spec.Pointers
	if pointers == 0 {
		pointers = 1
	}
	src := &source{spec: spec, source: input.NewBasicSource(spec.Name, pointers)}
	switch spec.Kind {
	case KindController, KindHand:
		src.controller = input.NewBasicController(src.source, spec.Kind == KindHand)
		src.controller.SetPosition(spec.Position)
	}
	w.sources.Set(spec.Name, src)
	if or(spec.Detected, true) {
		return w.detect(src)
	}
	return nil
}

func (w *World) detect(src *source) error {
	if src.controller != nil {
		return w.deps.Input.Detect(src.source, src.controller)
	}
	return w.deps.Input.Detect(src.source, nil)
}

func (w *World) resolveAction(name string) (input.Action, error) {
	switch name {
	case ActionSelect:
		return w.deps.Service.SelectAction(), nil
	case ActionGrab:
		return w.deps.Service.GrabAction(), nil
	}
	if a, ok := w.inputActions[name]; ok {
		return a, nil
	}
	return input.ActionNone, fmt.Errorf("%w: %s", ErrUnknownInputAction, name)
}

// Interactable returns the interactable built for the object called name.
func (w *World) Interactable(name string) (*interactables.Interactable, bool) {
	return w.objects.Get(name)
}

// Interactables returns the built interactables in scene order.
func (w *World) Interactables() []*interactables.Interactable { return w.objects.Snapshot() }

// Source returns the simulated source called name.
func (w *World) Source(name string) (*input.BasicSource, bool) {
	src, ok := w.sources.Get(name)
	if !ok {
		return nil, false
	}
	return src.source, true
}

// Script returns the scripted steps in order.
func (w *World) Script() []Step { return w.script }

// Destroy tears down the select components and every interactable.
func (w *World) Destroy() {
	for _, s := range w.selectors {
		s.Destroy()
	}
	w.selectors = nil
	for it := range w.objects.Values() {
		it.Destroy()
	}
	w.objects.Clear()
}

// Apply runs one script step. Wait steps do nothing here; the caller lets
// Step.Wait ticks pass.
func (w *World) Apply(step Step) error {
	switch step.Do {
	case OpWait:
		return nil
	case OpDetect:
		src, err := w.source(step.Source)
		if err != nil {
			return err
		}
		return w.detect(src)
	case OpLose:
		src, err := w.source(step.Source)
		if err != nil {
			return err
		}
		return w.deps.Input.Lose(src.source.ID())
	case OpAim:
		return w.aim(step)
	case OpPress, OpRelease:
		return w.press(step)
	case OpMove:
		src, err := w.source(step.Source)
		if err != nil {
			return err
		}
		if src.controller == nil {
			return fmt.Errorf("%w: %s", ErrNoController, step.Source)
		}
		if step.Position == nil {
			return fmt.Errorf("%w: move needs a position", ErrInvalidScene)
		}
		src.controller.SetPosition(*step.Position)
		return nil
	case OpEnable, OpDisable:
		it, err := w.object(step.Object)
		if err != nil {
			return err
		}
		if step.Do == OpEnable {
			it.Enable()
		} else {
			it.Disable()
		}
		return nil
	case OpExpect:
		return w.expect(step)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step.Do)
	}
}

func (w *World) aim(step Step) error {
	src, err := w.source(step.Source)
	if err != nil {
		return err
	}
	p, ok := src.source.Pointer(input.PointerID(step.Pointer))
	if !ok {
		return fmt.Errorf("%w: %s/%d", input.ErrPointerNotFound, step.Source, step.Pointer)
	}
	var target scene.ObjectID
	if step.Object != "" {
		it, err := w.object(step.Object)
		if err != nil {
			return err
		}
		target = it.ObjectID()
	}
	if !p.Aim(target) {
		w.logger.Debug("pointer is focus locked",
			log.String("source", step.Source),
			log.Int("pointer", step.Pointer),
		)
	}
	return nil
}

func (w *World) press(step Step) error {
	src, err := w.source(step.Source)
	if err != nil {
		return err
	}
	action, err := w.resolveAction(step.Action)
	if err != nil {
		return err
	}
	var e *input.Event
	if step.Do == OpPress {
		e, err = w.deps.Input.Press(src.source.ID(), action)
	} else {
		e, err = w.deps.Input.Release(src.source.ID(), action)
	}
	if err != nil {
		return err
	}
	w.logger.Debug("input routed",
		log.String("op", step.Do),
		log.String("source", step.Source),
		log.Stringer("action", action),
		log.Bool("used", e.Used()),
	)
	return nil
}

func (w *World) expect(step Step) error {
	it, err := w.object(step.Object)
	if err != nil {
		return err
	}
	want, err := interaction.ParseState(step.State)
	if err != nil {
		return err
	}
	var errs []error
	if got := it.State(); got != want {
		errs = append(errs, fmt.Errorf("%s is %s, want %s", step.Object, got, want))
	}
	if step.Primary != "" {
		src, err := w.source(step.Primary)
		if err != nil {
			return err
		}
		primary, ok := it.PrimaryInteractor()
		if !ok || primary.SourceID() != src.source.ID() {
			errs = append(errs, fmt.Errorf("%s primary is not %s", step.Object, step.Primary))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExpectation, err)
	}
	return nil
}

func (w *World) source(name string) (*source, error) {
	src, ok := w.sources.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	return src, nil
}

func (w *World) object(name string) (*interactables.Interactable, error) {
	it, ok := w.objects.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, name)
	}
	return it, nil
}
