package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/picomenu/pkg/commands"
	"github.com/arthur-debert/picomenu/pkg/config"
	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/logging"
	"github.com/arthur-debert/picomenu/pkg/menu"
	"github.com/arthur-debert/picomenu/pkg/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var (
		listen      string
		prompt      string
		maxSessions int
		inputSize   int
		outputSize  int
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		Example: MsgServeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			flags := cmd.Flags()
			if flags.Changed("listen") {
				overrides["device.kind"] = config.DeviceTCP
				overrides["device.listen"] = listen
			}
			if flags.Changed("prompt") {
				overrides["menu.prompt"] = prompt
			}
			if flags.Changed("max-sessions") {
				overrides["device.max_sessions"] = maxSessions
			}
			if flags.Changed("input-size") {
				overrides["input.buffer_size"] = inputSize
			}
			if flags.Changed("output-size") {
				overrides["output.buffer_size"] = outputSize
			}

			cfg, err := loadConfig(opts, overrides)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Device.Kind == config.DeviceTCP {
				return serveTCP(ctx, cmd, cfg)
			}
			dev := device.NewStream(cmd.InOrStdin(), cmd.OutOrStdout())
			return newSession(cfg)(ctx, dev)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", MsgFlagListen)
	cmd.Flags().StringVar(&prompt, "prompt", "", MsgFlagPrompt)
	cmd.Flags().IntVar(&maxSessions, "max-sessions", server.DefaultMaxSessions, MsgFlagMaxSessions)
	cmd.Flags().IntVar(&inputSize, "input-size", 0, MsgFlagInputSize)
	cmd.Flags().IntVar(&outputSize, "output-size", 0, MsgFlagOutputSize)

	return cmd
}

func serveTCP(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	srv, err := server.Listen(ctx, cfg.Device.Listen, newSession(cfg),
		server.WithMaxSessions(cfg.Device.MaxSessions))
	if err != nil {
		return err
	}
	printInfo(cmd.ErrOrStderr(), fmt.Sprintf(MsgListening, srv.Addr()))
	return srv.Serve(ctx)
}

// newSession returns a session that runs a fresh demo menu on a device
func newSession(cfg *config.Config) server.SessionFunc {
	return func(ctx context.Context, dev device.Device) error {
		m := newDemoMenu(cfg, dev)
		if err := m.Err(); err != nil {
			return fmt.Errorf(MsgErrBuildMenu, err)
		}

		err := m.Run(ctx)
		st := m.State()
		log.Debug().
			Int("counter", st.Counter).
			Str("name", st.Name).
			Msg("Session finished")
		if err != nil && ctx.Err() != nil {
			// Interrupted by a signal or server shutdown
			return nil
		}
		return err
	}
}

func newDemoMenu(cfg *config.Config, dev device.Device) *menu.Menu[commands.State] {
	opts := []menu.Option{
		menu.WithMaxCommands(cfg.Registry.MaxCommands),
		menu.WithLogger(logging.GetLogger("menu")),
	}
	if cfg.Menu.Prompt != "" {
		opts = append(opts, menu.WithPrompt(cfg.Menu.Prompt))
	}

	return commands.NewMenu(dev,
		commands.NewState(cfg.State.Version),
		make([]byte, cfg.Input.BufferSize),
		make([]byte, cfg.Output.BufferSize),
		opts...)
}
