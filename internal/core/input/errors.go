package input

import "errors"

var (
	ErrSourceNotFound  = errors.New("input source not found")
	ErrSourceDetected  = errors.New("input source already detected")
	ErrPointerNotFound = errors.New("pointer not found")
	ErrNilSource       = errors.New("input source is nil")
)
