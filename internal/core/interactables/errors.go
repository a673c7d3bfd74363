package interactables

import "errors"

var ErrNilObject = errors.New("interactable requires a scene object")
