package interactors

import "errors"

var ErrNilController = errors.New("controller is nil")
