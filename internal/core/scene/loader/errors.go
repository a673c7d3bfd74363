package loader

import "errors"

var (
	ErrInvalidScene       = errors.New("invalid scene")
	ErrDuplicateObject    = errors.New("duplicate object name")
	ErrDuplicateSource    = errors.New("duplicate source name")
	ErrUnknownObject      = errors.New("unknown object")
	ErrUnknownSource      = errors.New("unknown source")
	ErrUnknownInputAction = errors.New("unknown input action")
	ErrUnknownStep        = errors.New("unknown script step")
	ErrNoController       = errors.New("source has no controller")
	ErrExpectation        = errors.New("expectation failed")
)
