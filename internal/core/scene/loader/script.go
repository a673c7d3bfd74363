package loader

import (
	"fmt"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

// Script step operations.
const (
	OpWait    = "wait"    // let Ticks loop ticks pass
	OpDetect  = "detect"  // detect Source
	OpLose    = "lose"    // lose Source
	OpAim     = "aim"     // aim Pointer of Source at Object, or at nothing
	OpPress   = "press"   // input down of Action on Source
	OpRelease = "release" // input up of Action on Source
	OpMove    = "move"    // move the controller of Source to Position
	OpEnable  = "enable"  // enable Object
	OpDisable = "disable" // disable Object
	OpExpect  = "expect"  // check State (and Primary) of Object
)

// Input action names every scene knows. They resolve to the service's
// select and grab actions.
const (
	ActionSelect = "select"
	ActionGrab   = "grab"
)

// Step is one scripted input operation.
type Step struct {
	Do       string        `yaml:"do"`
	Source   string        `yaml:"source,omitempty"`
	Pointer  int           `yaml:"pointer,omitempty"`
	Object   string        `yaml:"object,omitempty"`
	Action   string        `yaml:"action,omitempty"`
	Ticks    int           `yaml:"ticks,omitempty"`
	Position *physics.Vec3 `yaml:"position,omitempty"`
	State    string        `yaml:"state,omitempty"`
	Primary  string        `yaml:"primary,omitempty"` // source name expected as primary interactor
}

// Wait reports how many ticks the step waits for. Only wait steps wait.
func (s Step) Wait() int {
	if s.Do != OpWait {
		return 0
	}
	return max(s.Ticks, 1)
}

func (s Step) String() string {
	switch s.Do {
	case OpWait:
		return fmt.Sprintf("wait %d", s.Wait())
	case OpAim:
		return fmt.Sprintf("aim %s/%d at %q", s.Source, s.Pointer, s.Object)
	case OpPress, OpRelease:
		return fmt.Sprintf("%s %s on %s", s.Do, s.Action, s.Source)
	case OpExpect:
		return fmt.Sprintf("expect %s %s", s.Object, s.State)
	case OpEnable, OpDisable:
		return s.Do + " " + s.Object
	default:
		return s.Do + " " + s.Source
	}
}

func (s Step) validate(objects, sources map[string]struct{}, knownAction func(string) bool) error {
	needSource := func() error {
		if _, ok := sources[s.Source]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSource, s.Source)
		}
		return nil
	}
	needObject := func() error {
		if _, ok := objects[s.Object]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownObject, s.Object)
		}
		return nil
	}
	switch s.Do {
	case OpWait:
		if s.Ticks < 0 {
			return fmt.Errorf("negative wait")
		}
		return nil
	case OpDetect, OpLose:
		return needSource()
	case OpMove:
		if s.Position == nil {
			return fmt.Errorf("move needs a position")
		}
		return needSource()
	case OpAim:
		if s.Object != "" {
			if err := needObject(); err != nil {
				return err
			}
		}
		return needSource()
	case OpPress, OpRelease:
		if !knownAction(s.Action) {
			return fmt.Errorf("%w: %q", ErrUnknownInputAction, s.Action)
		}
		return needSource()
	case OpEnable, OpDisable:
		return needObject()
	case OpExpect:
		if _, err := interaction.ParseState(s.State); err != nil {
			return err
		}
		if s.Primary != "" {
			if _, ok := sources[s.Primary]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownSource, s.Primary)
			}
		}
		return needObject()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, s.Do)
	}
}
