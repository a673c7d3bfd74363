package input

import (
	"fmt"
	"slices"

	"github.com/zeusync/interactionsdk/pkg/generic"
)

var _ System = (*Simulator)(nil)

type simulatedSource struct {
	source     Source
	controller Controller
}

// Simulator is an in-process input System. Sources are detected and lost
// explicitly, and input presses are routed through a Router. It is not safe
// for concurrent use; drive it from the loop goroutine.
type Simulator struct {
	sources  *generic.OrderedMap[SourceID, simulatedSource]
	handlers []SourceStateHandler
	router   *Router
}

func NewSimulator(router *Router) *Simulator {
	if router == nil {
		router = NewRouter()
	}
	return &Simulator{
		sources: generic.NewOrderedMap[SourceID, simulatedSource](),
		router:  router,
	}
}

func (s *Simulator) Router() *Router { return s.router }

func (s *Simulator) DetectedSources() []Source {
	out := make([]Source, 0, s.sources.Len())
	for ss := range s.sources.Values() {
		out = append(out, ss.source)
	}
	return out
}

func (s *Simulator) TryGetController(source Source) (Controller, bool) {
	if source == nil {
		return nil, false
	}
	ss, ok := s.sources.Get(source.ID())
	if !ok || ss.controller == nil {
		return nil, false
	}
	return ss.controller, true
}

func (s *Simulator) AddSourceStateHandler(h SourceStateHandler) {
	if !slices.Contains(s.handlers, h) {
		s.handlers = append(s.handlers, h)
	}
}

func (s *Simulator) RemoveSourceStateHandler(h SourceStateHandler) {
	if i := slices.Index(s.handlers, h); i >= 0 {
		s.handlers = slices.Delete(s.handlers, i, i+1)
	}
}

// Detect registers source (with an optional controller) and notifies handlers.
func (s *Simulator) Detect(source Source, controller Controller) error {
	if source == nil {
		return ErrNilSource
	}
	if !s.sources.Ensure(source.ID(), simulatedSource{source: source, controller: controller}) {
		return fmt.Errorf("%w: %s", ErrSourceDetected, source.Name())
	}
	ev := SourceStateEvent{Source: source}
	for _, h := range slices.Clone(s.handlers) {
		h.OnSourceDetected(ev)
	}
	return nil
}

// Lose removes the source and notifies handlers.
func (s *Simulator) Lose(id SourceID) error {
	ss, ok := s.sources.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, id)
	}
	s.sources.Delete(id)
	ev := SourceStateEvent{Source: ss.source}
	for _, h := range slices.Clone(s.handlers) {
		h.OnSourceLost(ev)
	}
	return nil
}

func (s *Simulator) Source(id SourceID) (Source, bool) {
	ss, ok := s.sources.Get(id)
	return ss.source, ok
}

// Press raises an input-down event for the source and returns it after routing.
func (s *Simulator) Press(id SourceID, action Action) (*Event, error) {
	ss, ok := s.sources.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, id)
	}
	e := NewEvent(ss.source, action)
	s.router.InputDown(e)
	return e, nil
}

// Release raises an input-up event for the source and returns it after routing.
func (s *Simulator) Release(id SourceID, action Action) (*Event, error) {
	ss, ok := s.sources.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, id)
	}
	e := NewEvent(ss.source, action)
	s.router.InputUp(e)
	return e, nil
}
