package clock

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// State is the progress of one level as shown by its clock
type State int

const (
	StateNormal State = iota
	StateHover
	StateRunning
	StateSucceed
	StateFailed
)

// String returns the string representation of the clock state
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHover:
		return "hover"
	case StateRunning:
		return "running"
	case StateSucceed:
		return "succeed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level attempt is over for good
func (s State) Terminal() bool {
	return s == StateSucceed || s == StateFailed
}

// Playable reports whether the clock can still be launched
func (s State) Playable() bool {
	return s == StateNormal || s == StateHover
}

func parseState(name string) (State, error) {
	for s := StateNormal; s <= StateFailed; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return StateNormal, fmt.Errorf("unknown clock state %q", name)
}

// MarshalYAML stores the state by name
func (s State) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a state stored by name
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := parseState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
