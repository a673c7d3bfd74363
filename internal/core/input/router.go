package input

import (
	"slices"

	"github.com/zeusync/interactionsdk/internal/core/scene"
)

// Router delivers input events to the handlers attached to whatever the
// event's source pointers currently target. Handlers of one object are called
// in attachment order; every handler sees the event and is expected to check
// Event.Used itself.
type Router struct {
	handlers map[scene.ObjectID][]Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[scene.ObjectID][]Handler)}
}

// Attach adds h to the handlers of object. Attaching the same handler twice is a no-op.
func (r *Router) Attach(object scene.ObjectID, h Handler) {
	if slices.Contains(r.handlers[object], h) {
		return
	}
	r.handlers[object] = append(r.handlers[object], h)
}

func (r *Router) Detach(object scene.ObjectID, h Handler) {
	hs := r.handlers[object]
	if i := slices.Index(hs, h); i >= 0 {
		hs = slices.Delete(hs, i, i+1)
	}
	if len(hs) == 0 {
		delete(r.handlers, object)
		return
	}
	r.handlers[object] = hs
}

// DetachAll removes every handler of object.
func (r *Router) DetachAll(object scene.ObjectID) {
	delete(r.handlers, object)
}

func (r *Router) InputDown(e *Event) {
	r.dispatch(e, Handler.OnInputDown)
}

func (r *Router) InputUp(e *Event) {
	r.dispatch(e, Handler.OnInputUp)
}

func (r *Router) dispatch(e *Event, deliver func(Handler, *Event)) {
	if e == nil || e.Source == nil {
		return
	}
	visited := make(map[scene.ObjectID]struct{}, 1)
	for _, p := range e.Source.Pointers() {
		target := p.CurrentTarget()
		if target.IsNil() {
			continue
		}
		if _, seen := visited[target]; seen {
			continue
		}
		visited[target] = struct{}{}
		// copy: a handler may detach itself while handling
		for _, h := range slices.Clone(r.handlers[target]) {
			deliver(h, e)
		}
	}
}
