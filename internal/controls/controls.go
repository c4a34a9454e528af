// Package controls maps physical keys to logical actions and tracks which
// actions are held.
package controls

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a logical input.
type Action int

const (
	None Action = iota
	Forward
	Back
	TurnLeft
	TurnRight
	CycleCamera
	Zoom
	Quit
	Thrust
	Reverse
	Screenshot
	ToggleFigure

	actionCount
)

var actionNames = [...]string{
	None:         "none",
	Forward:      "forward",
	Back:         "back",
	TurnLeft:     "turn_left",
	TurnRight:    "turn_right",
	CycleCamera:  "cycle_camera",
	Zoom:         "zoom",
	Quit:         "quit",
	Thrust:       "thrust",
	Reverse:      "reverse",
	Screenshot:   "screenshot",
	ToggleFigure: "toggle_figure",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && Action(a) != None {
			return Action(a), nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Keys is the held-key table.
type Keys struct {
	held [actionCount]bool
}

// Set records a press or release.
func (k *Keys) Set(a Action, down bool) {
	if a > None && a < actionCount {
		k.held[a] = down
	}
}

// Held reports whether the action is currently held.
func (k *Keys) Held(a Action) bool {
	return a > None && a < actionCount && k.held[a]
}

// Clear releases everything, e.g. when the window loses focus.
func (k *Keys) Clear() {
	k.held = [actionCount]bool{}
}

// Bindings maps key names (as the windowing layer spells them) to actions.
// Several keys may trigger the same action.
type Bindings map[string]Action

// DefaultKeyNames returns the default key names per action.
func DefaultKeyNames() map[string][]string {
	return map[string][]string{
		Forward.String():      {"W"},
		Back.String():         {"S"},
		TurnLeft.String():     {"A"},
		TurnRight.String():    {"D"},
		CycleCamera.String():  {"C"},
		Zoom.String():         {"Left Shift", "Right Shift"},
		Quit.String():         {"Escape", "Q"},
		Thrust.String():       {"Space"},
		Reverse.String():      {"X"},
		Screenshot.String():   {"F12"},
		ToggleFigure.String(): {"T"},
	}
}

// NewBindings builds bindings from action name -> key names. Key names are
// compared case-insensitively.
func NewBindings(byAction map[string][]string) (Bindings, error) {
	b := make(Bindings)
	names := make([]string, 0, len(byAction))
	for name := range byAction {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, key := range byAction[name] {
			k := normalize(key)
			if prev, ok := b[k]; ok && prev != a {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, a)
			}
			b[k] = a
		}
	}
	return b, nil
}

// Lookup returns the action bound to a key name, or None.
func (b Bindings) Lookup(key string) Action {
	return b[normalize(key)]
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
