// Package loader reads a YAML scene description and builds it into
// interactables, simulated input sources and a replayable input script.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

// Scene is the decoded scene description.
type Scene struct {
	InputActions map[string]input.Action `yaml:"input_actions,omitempty"`
	Objects      []ObjectSpec            `yaml:"objects"`
	Sources      []SourceSpec            `yaml:"sources"`
	Script       []Step                  `yaml:"script,omitempty"`
}

// ObjectSpec describes one interactable scene object. Unset capability and
// interaction flags default to true.
type ObjectSpec struct {
	Name            string         `yaml:"name"`
	Label           string         `yaml:"label,omitempty"`
	InputAction     string         `yaml:"input_action,omitempty"` // key of Scene.InputActions, "select" or "grab"
	NearCapable     *bool          `yaml:"near_capable,omitempty"`
	FarCapable      *bool          `yaml:"far_capable,omitempty"`
	NearInteraction *bool          `yaml:"near_interaction,omitempty"`
	FarInteraction  *bool          `yaml:"far_interaction,omitempty"`
	Position        physics.Vec3   `yaml:"position,omitempty"`
	Material        string         `yaml:"material,omitempty"` // initial material; adds a renderer
	Rigidbody       *RigidbodySpec `yaml:"rigidbody,omitempty"`
	Select          bool           `yaml:"select,omitempty"` // attach a select component
	Grab            bool           `yaml:"grab,omitempty"`   // attach a grab component
	Actions         []ActionSpec   `yaml:"actions,omitempty"`
}

type RigidbodySpec struct {
	Kinematic bool `yaml:"kinematic"`
	Gravity   bool `yaml:"gravity"`
}

// ActionSpec names a registered action and its factory parameters.
type ActionSpec struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

type SourceKind string

const (
	KindGeneric    SourceKind = "generic"
	KindController SourceKind = "controller"
	KindHand       SourceKind = "hand"
)

// SourceSpec describes a simulated input source. Sources are detected when
// the scene is built unless Detected is false.
type SourceSpec struct {
	Name     string       `yaml:"name"`
	Kind     SourceKind   `yaml:"kind,omitempty"`
	Pointers int          `yaml:"pointers,omitempty"` // defaults to 1
	Detected *bool        `yaml:"detected,omitempty"`
	Position physics.Vec3 `yaml:"position,omitempty"`
}

// Load reads the scene description at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a scene description and validates it.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names and references without building anything.
func (s *Scene) Validate() error {
	var errs []error
	objects := make(map[string]struct{}, len(s.Objects))
	for i, o := range s.Objects {
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("object %d has no name", i))
			continue
		}
		if _, dup := objects[o.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateObject, o.Name))
		}
		objects[o.Name] = struct{}{}
		if o.InputAction != "" && !s.knownInputAction(o.InputAction) {
			errs = append(errs, fmt.Errorf("object %s: %w: %s", o.Name, ErrUnknownInputAction, o.InputAction))
		}
	}
	sources := make(map[string]struct{}, len(s.Sources))
	for i, src := range s.Sources {
		if src.Name == "" {
			errs = append(errs, fmt.Errorf("source %d has no name", i))
			continue
		}
		if _, dup := sources[src.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateSource, src.Name))
		}
		sources[src.Name] = struct{}{}
		switch src.Kind {
		case "", KindGeneric, KindController, KindHand:
		default:
			errs = append(errs, fmt.Errorf("source %s: unknown kind %q", src.Name, src.Kind))
		}
		if src.Pointers < 0 {
			errs = append(errs, fmt.Errorf("source %s: negative pointer count", src.Name))
		}
	}
	for i, step := range s.Script {
		if err := step.validate(objects, sources, s.knownInputAction); err != nil {
			errs = append(errs, fmt.Errorf("script step %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

func (s *Scene) knownInputAction(name string) bool {
	if name == ActionSelect || name == ActionGrab {
		return true
	}
	_, ok := s.InputActions[name]
	return ok
}

func or(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
