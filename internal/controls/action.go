// Package controls maps held keys and mouse motion to camera, simulation
// and display actions. It has no SDL dependency; key codes are resolved
// by the caller.
package controls

import (
	"errors"
	"fmt"
	"sort"
)

// Binding errors.
var (
	ErrUnknownAction = errors.New("unknown control action")
	ErrUnknownKey    = errors.New("unknown key name")
)

// Action is something a key can trigger.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Up
	Down
	SpinLeft
	SpinRight
	Faster
	Slower
	PitchUp
	PitchDown
	YawLeft
	YawRight
	ResetView
	ModeFill
	ModeLine
	ModePoint
	ModeSmooth
	Screenshot
	Quit
	actionCount
)

// actionNames are the config keys for each action.
var actionNames = [actionCount]string{
	Forward:    "forward",
	Backward:   "backward",
	Left:       "left",
	Right:      "right",
	Up:         "up",
	Down:       "down",
	SpinLeft:   "spin_left",
	SpinRight:  "spin_right",
	Faster:     "faster",
	Slower:     "slower",
	PitchUp:    "pitch_up",
	PitchDown:  "pitch_down",
	YawLeft:    "yaw_left",
	YawRight:   "yaw_right",
	ResetView:  "reset_view",
	ModeFill:   "mode_fill",
	ModeLine:   "mode_line",
	ModePoint:  "mode_point",
	ModeSmooth: "mode_smooth",
	Screenshot: "screenshot",
	Quit:       "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks an action up by its config name.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Bindings maps each action to a key code. Unbound actions are absent.
type Bindings map[Action]int

// Resolver turns a key name into a key code.
type Resolver func(name string) (int, bool)

// NewBindings resolves a name-to-key-name table, as found in the config.
// Entries are processed in sorted order so errors are deterministic.
func NewBindings(table map[string]string, resolve Resolver) (Bindings, error) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	b := make(Bindings, len(table))
	for _, name := range names {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		key := table[name]
		if key == "" {
			continue
		}
		code, ok := resolve(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownKey, key, name)
		}
		b[action] = code
	}
	return b, nil
}
