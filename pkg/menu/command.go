package menu

import (
	"context"

	"github.com/arthur-debert/picomenu/pkg/output"
)

// Command is a named, help-documented unit of behavior. Commands are
// stateless; persistent effects go through the state pointer, which only the
// currently executing command ever sees.
type Command[S any] interface {
	Name() string
	Help() string
	Execute(ctx context.Context, args Args, out *output.Output, state *S) error
}

// ExecuteFunc is the signature of a command body.
type ExecuteFunc[S any] func(ctx context.Context, args Args, out *output.Output, state *S) error

type funcCommand[S any] struct {
	name string
	help string
	fn   ExecuteFunc[S]
}

// NewFunc builds a Command from a function.
func NewFunc[S any](name, help string, fn ExecuteFunc[S]) Command[S] {
	return funcCommand[S]{name: name, help: help, fn: fn}
}

func (c funcCommand[S]) Name() string { return c.name }
func (c funcCommand[S]) Help() string { return c.help }

func (c funcCommand[S]) Execute(ctx context.Context, args Args, out *output.Output, state *S) error {
	return c.fn(ctx, args, out, state)
}
