package commands

import (
	"context"

	"github.com/arthur-debert/picomenu/pkg/menu"
	"github.com/arthur-debert/picomenu/pkg/output"
)

// TestResponse is the fixed reply of the test command.
const TestResponse = "Testing 123!\n"

// Version prints the state version as "Version: N".
func Version() menu.Command[State] {
	return menu.NewFunc("version", "Shows version",
		func(_ context.Context, _ menu.Args, out *output.Output, st *State) error {
			return out.Printf("Version: %d\n", st.Version)
		})
}

// Hello greets the name given as argument and remembers it.
func Hello() menu.Command[State] {
	return menu.NewFunc("hello", "Greets you by name",
		func(_ context.Context, args menu.Args, out *output.Output, st *State) error {
			name, ok := args.Value()
			if !ok {
				return out.Writeln("Please enter your name")
			}
			if err := out.Printf("Hello %s!\n", name); err != nil {
				return err
			}
			st.Name = name
			return nil
		})
}

// Test prints TestResponse.
func Test() menu.Command[State] {
	return menu.NewFunc("test", "Tests stuff",
		func(_ context.Context, _ menu.Args, out *output.Output, _ *State) error {
			return out.WriteString(TestResponse)
		})
}

// Echo repeats its argument, or prints an empty line.
func Echo() menu.Command[State] {
	return menu.NewFunc("echo", "Repeats its argument",
		func(_ context.Context, args menu.Args, out *output.Output, _ *State) error {
			return out.Writeln(args.String())
		})
}

// Count increments the session counter and prints it.
func Count() menu.Command[State] {
	return menu.NewFunc("count", "Counts invocations",
		func(_ context.Context, _ menu.Args, out *output.Output, st *State) error {
			st.Counter++
			return out.Printf("Count: %d\n", st.Counter)
		})
}

// Overflow writes a line longer than small output buffers and records
// whether it was rejected.
func Overflow() menu.Command[State] {
	return menu.NewFunc("overflow", "Crashes",
		func(_ context.Context, _ menu.Args, out *output.Output, st *State) error {
			err := out.Writeln("Very long text that will overflow")
			st.Overflowed = err != nil
			return err
		})
}
