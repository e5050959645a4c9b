package menu

import (
	"context"

	"github.com/arthur-debert/picomenu/pkg/output"
	"github.com/arthur-debert/picomenu/pkg/registry"
)

// helpCommand lists every registered command, itself included, as
// "name: help" lines in registration order. Lines are streamed through
// FlushRetry so the listing may be longer than the output buffer.
type helpCommand[S any] struct {
	commands registry.Registry[Command[S]]
}

func (h helpCommand[S]) Name() string { return HelpCommandName }
func (h helpCommand[S]) Help() string { return "Lists available commands" }

func (h helpCommand[S]) Execute(ctx context.Context, _ Args, out *output.Output, _ *S) error {
	return h.commands.Each(func(name string, cmd Command[S]) error {
		help := cmd.Help()
		return out.FlushRetry(ctx, func() error {
			return out.Printf("%s: %s\n", name, help)
		})
	})
}
