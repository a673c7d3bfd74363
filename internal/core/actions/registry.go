package actions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

// Built-in action names.
const (
	ChangeMaterial  = "change_material"
	FocusLock       = "focus_lock"
	UpdateRigidbody = "update_rigidbody"
	Translate       = "translate"
)

// Factory builds an action from free-form parameters, typically decoded from YAML.
type Factory func(params map[string]any) (interaction.Action, error)

// Registry maps action names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in actions registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(ChangeMaterial, newChangeMaterialFromParams)
	r.Register(FocusLock, func(map[string]any) (interaction.Action, error) { return NewFocusLock(), nil })
	r.Register(UpdateRigidbody, func(map[string]any) (interaction.Action, error) { return NewUpdateRigidbody(nil), nil })
	r.Register(Translate, func(map[string]any) (interaction.Action, error) { return NewTranslate(nil), nil })
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

func (r *Registry) New(name string, params map[string]any) (interaction.Action, error) {
	r.mu.RLock()
	f := r.factories[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	a, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", name, err)
	}
	return a, nil
}

// Names lists the registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// newChangeMaterialFromParams reads {normal: name, focused: name, selected: name}.
func newChangeMaterialFromParams(params map[string]any) (interaction.Action, error) {
	materials := make(map[interaction.State]scene.Material, len(params))
	for key, value := range params {
		state, err := interaction.ParseState(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadParam, err)
		}
		name, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: material for %s must be a string, got %T", ErrBadParam, state, value)
		}
		materials[state] = scene.Material{Name: name}
	}
	return NewChangeMaterial(nil, materials), nil
}
