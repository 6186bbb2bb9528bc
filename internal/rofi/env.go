// Package rofi implements rofi's script mode protocol.
//
// Rofi runs the script once to populate the menu, then again with the selected entry as argument.
// The environment tells the two apart, see rofi-script(5).
package rofi

import (
	"errors"
	"fmt"
	"strconv"
)

// State is the reason rofi ran the script, as given by ROFI_RETV.
type State int

const (
	// Rofi is populating the menu.
	StateInitial State = 0
	// The user selected an entry.
	StateSelected State = 1
	// The user entered text which matches no entry.
	StateCustom State = 2
	// The user pressed one of the custom keybindings. Subsequent bindings have consecutive values.
	StateKeybinding State = 10
)

const (
	stateEnvVar = "ROFI_RETV"
	infoEnvVar  = "ROFI_INFO"
)

var errInvalidState = errors.New("invalid rofi state")

// Env is the information rofi passes to scripts through the environment.
type Env struct {
	// Active is false when the script isn't running under rofi.
	Active bool
	State  State
	// Info attached to the selected entry, if any.
	Info string
}

// ReadEnv extracts the script's environment, typically from os.LookupEnv.
func ReadEnv(lookup func(string) (string, bool)) (Env, error) {
	val, ok := lookup(stateEnvVar)
	if !ok {
		return Env{}, nil
	}
	state, err := strconv.Atoi(val)
	if err != nil || state < 0 {
		return Env{}, fmt.Errorf("%w: %q", errInvalidState, val)
	}
	info, _ := lookup(infoEnvVar)
	return Env{Active: true, State: State(state), Info: info}, nil
}

// Keybinding returns the 1-based index of the custom keybinding which triggered the script, or 0 if
// none did.
func (s State) Keybinding() int {
	if s < StateKeybinding {
		return 0
	}
	return int(s-StateKeybinding) + 1
}
