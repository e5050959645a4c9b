// Package commands provides the demo command set served by the picomenu
// binary.
//
// Each command is a menu.Command[State]; Register attaches all of them to a
// menu in a fixed order so that help output is stable:
//   - version  - prints the state version
//   - hello    - greets the caller by name
//   - test     - prints a fixed test response
//   - echo     - repeats its argument
//   - count    - increments and prints a session counter
//   - overflow - writes a line that does not fit small output buffers
package commands

import (
	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/menu"
)

// DefaultVersion is the version reported by a fresh State.
const DefaultVersion = 2

// State is the per-session state shared by the demo commands.
type State struct {
	// Version is what the version command prints.
	Version int
	// Name is the last name given to hello.
	Name string
	// Counter is incremented by count.
	Counter int
	// Overflowed records whether the overflow command hit the output limit.
	Overflowed bool
}

// NewState returns a State reporting version.
func NewState(version int) *State {
	return &State{Version: version}
}

// All returns the demo commands in registration order.
func All() []menu.Command[State] {
	return []menu.Command[State]{
		Version(),
		Hello(),
		Test(),
		Echo(),
		Count(),
		Overflow(),
	}
}

// Register attaches every demo command to m.
func Register(m *menu.Menu[State]) *menu.Menu[State] {
	for _, cmd := range All() {
		m = m.WithCommand(cmd)
	}
	return m
}

// NewMenu builds a menu over dev serving the demo commands.
func NewMenu(dev device.Device, state *State, inBuf, outBuf []byte, opts ...menu.Option) *menu.Menu[State] {
	return Register(menu.New(dev, state, inBuf, outBuf, opts...))
}
