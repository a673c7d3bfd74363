// Package ecs mirrors interaction notifications into a Donburi world.
//
// Every registered interactable becomes an entity carrying an [Interactable]
// component that follows its state, and interaction notifications are
// re-published as typed Donburi events:
//
//	bridge, _ := ecs.NewBridge(world, bus)
//	ecs.StateChangedEvent.Subscribe(world, onStateChanged)
//	bridge.ProcessEvents()
package ecs

import (
	"errors"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

// Interactable is the component mirrored for every registered interactable.
type Interactable struct {
	Object     scene.ObjectID
	Name       string
	Label      string
	State      interaction.State
	Primary    input.SourceID
	Selections int // selections made through select or grab components
}

var (
	InteractableComponent = donburi.NewComponentType[Interactable]()

	StateChangedEvent = events.NewEventType[interaction.StateChanged]()
	SelectedEvent     = events.NewEventType[interaction.InteractorSelected]()
	GrabbedEvent      = events.NewEventType[interaction.InteractorSelected]()
)

var ErrNilWorld = errors.New("ecs world is nil")

// Bridge subscribes to the interaction notifications of a bus and applies
// them to a world. Both must be driven from the loop goroutine.
type Bridge struct {
	world    donburi.World
	entities map[scene.ObjectID]donburi.Entity
	subs     []bus.Subscription
	query    *donburi.Query
}

func NewBridge(world donburi.World, b bus.EventBus) (*Bridge, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	br := &Bridge{
		world:    world,
		entities: make(map[scene.ObjectID]donburi.Entity),
		query:    donburi.NewQuery(filter.Contains(InteractableComponent)),
	}
	handlers := map[string]bus.EventHandler{
		interaction.EventInteractableAdded:   br.onAdded,
		interaction.EventInteractableRemoved: br.onRemoved,
		interaction.EventStateChanged:        br.onStateChanged,
		interaction.EventSelected:            br.onSelected(SelectedEvent),
		interaction.EventGrabbed:             br.onSelected(GrabbedEvent),
	}
	for typ, h := range handlers {
		sub, err := b.Subscribe(typ, h)
		if err != nil {
			_ = br.Close()
			return nil, err
		}
		br.subs = append(br.subs, sub)
	}
	return br, nil
}

func (br *Bridge) World() donburi.World { return br.world }

// Entity returns the entity mirroring the interactable with id.
func (br *Bridge) Entity(id scene.ObjectID) (donburi.Entity, bool) {
	e, ok := br.entities[id]
	return e, ok && br.world.Valid(e)
}

// Get returns the mirrored component of the interactable with id.
func (br *Bridge) Get(id scene.ObjectID) (Interactable, bool) {
	e, ok := br.Entity(id)
	if !ok {
		return Interactable{}, false
	}
	return *InteractableComponent.Get(br.world.Entry(e)), true
}

// Count returns the number of mirrored interactables.
func (br *Bridge) Count() int { return br.query.Count(br.world) }

// Each calls fn for every mirrored interactable.
func (br *Bridge) Each(fn func(Interactable)) {
	br.query.Each(br.world, func(entry *donburi.Entry) {
		fn(*InteractableComponent.Get(entry))
	})
}

// ProcessEvents delivers the queued Donburi events to their subscribers.
func (br *Bridge) ProcessEvents() {
	events.ProcessAllEvents(br.world)
}

// Name and Update let the bridge run as a loop system that drains the
// queued events once per tick.
func (br *Bridge) Name() string { return "ecs" }

func (br *Bridge) Update(time.Duration) error {
	br.ProcessEvents()
	return nil
}

// Close cancels the bus subscriptions. Entities stay in the world.
func (br *Bridge) Close() error {
	var all error
	for _, s := range br.subs {
		all = errors.Join(all, s.Cancel())
	}
	br.subs = nil
	return all
}

func (br *Bridge) ensure(id scene.ObjectID) *donburi.Entry {
	if e, ok := br.Entity(id); ok {
		return br.world.Entry(e)
	}
	e := br.world.Create(InteractableComponent)
	br.entities[id] = e
	entry := br.world.Entry(e)
	InteractableComponent.SetValue(entry, Interactable{Object: id})
	return entry
}

func (br *Bridge) onAdded(e bus.Event) error {
	ev, ok := e.Data().(interaction.InteractableChanged)
	if !ok {
		return nil
	}
	c := InteractableComponent.Get(br.ensure(ev.Object))
	c.Name = ev.Name
	c.Label = ev.Label
	return nil
}

func (br *Bridge) onRemoved(e bus.Event) error {
	ev, ok := e.Data().(interaction.InteractableChanged)
	if !ok {
		return nil
	}
	if entity, ok := br.Entity(ev.Object); ok {
		br.world.Remove(entity)
	}
	delete(br.entities, ev.Object)
	return nil
}

func (br *Bridge) onStateChanged(e bus.Event) error {
	ev, ok := e.Data().(interaction.StateChanged)
	if !ok {
		return nil
	}
	c := InteractableComponent.Get(br.ensure(ev.Object))
	c.Name = ev.Name
	c.Label = ev.Label
	c.State = ev.State
	c.Primary = ev.Primary
	StateChangedEvent.Publish(br.world, ev)
	return nil
}

func (br *Bridge) onSelected(typ *events.EventType[interaction.InteractorSelected]) bus.EventHandler {
	return func(e bus.Event) error {
		ev, ok := e.Data().(interaction.InteractorSelected)
		if !ok {
			return nil
		}
		if entity, ok := br.Entity(ev.Object); ok {
			InteractableComponent.Get(br.world.Entry(entity)).Selections++
		}
		typ.Publish(br.world, ev)
		return nil
	}
}
