package input

import (
	"fmt"
	"sort"
)

// Action is a logical input the simulation reacts to.
type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	Boost
	Jump

	actionCount
)

var actionNames = [actionCount]string{
	MoveForward: "move_forward",
	MoveBack:    "move_back",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	Boost:       "boost",
	Jump:        "jump",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a config name such as "move_forward".
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown input action %q", name)
}

// Config maps key names to action names.
type Config struct {
	Bindings map[string]string `yaml:"bindings"`
}

func DefaultConfig() Config {
	return Config{
		Bindings: map[string]string{
			"W":         "move_forward",
			"S":         "move_back",
			"A":         "move_left",
			"D":         "move_right",
			"LeftShift": "boost",
			"Space":     "jump",
		},
	}
}

// Bindings resolves key names to actions.
type Bindings map[string]Action

func NewBindings(cfg Config) (Bindings, error) {
	b := make(Bindings, len(cfg.Bindings))
	for key, name := range cfg.Bindings {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		b[key] = a
	}
	return b, nil
}

// Keys returns the bound key names in sorted order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// State holds latched action flags. Raw key events write it and the motion
// integrator reads it once per frame. Jump is edge-triggered: a press leaves a
// pending request that the integrator consumes.
type State struct {
	held        [actionCount]bool
	jumpPending bool
	bindings    Bindings
}

func NewState(bindings Bindings) *State {
	return &State{bindings: bindings}
}

func (s *State) Press(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	s.held[a] = true
	if a == Jump {
		s.jumpPending = true
	}
}

func (s *State) Release(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	s.held[a] = false
}

func (s *State) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// ConsumeJump reports whether a jump was requested since the last call.
func (s *State) ConsumeJump() bool {
	pending := s.jumpPending
	s.jumpPending = false
	return pending
}

// KeyDown handles a raw key-down event. Unbound keys are ignored.
func (s *State) KeyDown(key string) {
	if a, ok := s.bindings[key]; ok {
		s.Press(a)
	}
}

// KeyUp handles a raw key-up event. Unbound keys are ignored.
func (s *State) KeyUp(key string) {
	if a, ok := s.bindings[key]; ok {
		s.Release(a)
	}
}
