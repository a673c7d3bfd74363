package system

import "errors"

var (
	ErrSystemExists   = errors.New("system already registered")
	ErrSystemNotFound = errors.New("system not found")
	ErrNilSystem      = errors.New("system is nil")
	ErrLoopRunning    = errors.New("loop already running")
	ErrLoopStopped    = errors.New("loop stopped")
	ErrBadTickRate    = errors.New("tick rate must be positive")
)
