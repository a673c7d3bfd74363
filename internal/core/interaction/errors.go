package interaction

import "errors"

var (
	// ErrServiceUnavailable is returned by constructors that were given no interaction service.
	ErrServiceUnavailable = errors.New("interaction service unavailable")
	// ErrInputSystemUnavailable is returned by Initialize without an input system.
	ErrInputSystemUnavailable = errors.New("input system unavailable")
	ErrNilInputSource         = errors.New("input source is nil")
	ErrNilOwner               = errors.New("action owner is nil")
	ErrAlreadyAttached        = errors.New("action already attached")
	ErrAlreadyInitialized     = errors.New("interaction service already initialized")
	ErrUnknownState           = errors.New("unknown interaction state")
)
