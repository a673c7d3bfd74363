package interaction

import (
	"fmt"
	"strings"
)

// State is the interaction state of an interactable. States are ordered by
// strength: Normal < Focused < Selected.
type State uint8

const (
	Normal State = iota
	Focused
	Selected
)

var stateNames = [...]string{
	Normal:   "normal",
	Focused:  "focused",
	Selected: "selected",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

func (s State) Valid() bool { return int(s) < len(stateNames) }

// ParseState parses the lower-case state name, ignoring case.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return State(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
