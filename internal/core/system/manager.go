package system

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/systems"
)

// Manager runs registered systems in registration order.
// It is not safe for concurrent use; the Loop owns it.
type Manager struct {
	systems []systems.System
	metrics ManagerMetrics
	logger  log.Log
}

// ManagerMetrics provides system manager statistics
type ManagerMetrics struct {
	RegisteredSystems uint32
	Updates           uint64
	TotalUpdateTime   time.Duration
	LastUpdateTime    time.Duration
	SystemErrorCount  map[string]uint32
}

func NewManager(logger log.Log) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{
		logger:  logger.With(log.Component("systems")),
		metrics: ManagerMetrics{SystemErrorCount: make(map[string]uint32)},
	}
}

func (m *Manager) RegisterSystem(s systems.System) error {
	if s == nil {
		return ErrNilSystem
	}
	if m.HasSystem(s.Name()) {
		return fmt.Errorf("%w: %s", ErrSystemExists, s.Name())
	}
	m.systems = append(m.systems, s)
	m.metrics.RegisteredSystems = uint32(len(m.systems))
	m.logger.Debug("system registered", log.String("system", s.Name()))
	return nil
}

func (m *Manager) UnregisterSystem(name string) error {
	i := slices.IndexFunc(m.systems, func(s systems.System) bool { return s.Name() == name })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSystemNotFound, name)
	}
	m.systems = slices.Delete(m.systems, i, i+1)
	m.metrics.RegisteredSystems = uint32(len(m.systems))
	return nil
}

func (m *Manager) GetSystem(name string) (systems.System, bool) {
	i := slices.IndexFunc(m.systems, func(s systems.System) bool { return s.Name() == name })
	if i < 0 {
		return nil, false
	}
	return m.systems[i], true
}

func (m *Manager) HasSystem(name string) bool {
	_, ok := m.GetSystem(name)
	return ok
}

func (m *Manager) ListSystems() []systems.System { return slices.Clone(m.systems) }

// GetExecutionOrder returns system names in the order Update runs them.
func (m *Manager) GetExecutionOrder() []string {
	names := make([]string, len(m.systems))
	for i, s := range m.systems {
		names[i] = s.Name()
	}
	return names
}

// Update runs every system once. A failing system does not stop the others;
// their errors are joined.
func (m *Manager) Update(dt time.Duration) error {
	start := time.Now()
	var all error
	for _, s := range m.systems {
		if err := s.Update(dt); err != nil {
			m.metrics.SystemErrorCount[s.Name()]++
			m.logger.Warn("system update failed", log.String("system", s.Name()), log.Error(err))
			all = errors.Join(all, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	elapsed := time.Since(start)
	m.metrics.Updates++
	m.metrics.LastUpdateTime = elapsed
	m.metrics.TotalUpdateTime += elapsed
	return all
}

func (m *Manager) GetMetrics() ManagerMetrics {
	out := m.metrics
	out.SystemErrorCount = make(map[string]uint32, len(m.metrics.SystemErrorCount))
	for k, v := range m.metrics.SystemErrorCount {
		out.SystemErrorCount[k] = v
	}
	return out
}
