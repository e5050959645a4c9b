// Package cli implements the picomenu command tree.
package cli

import (
	"embed"
	"io"
	"io/fs"

	"github.com/arthur-debert/picomenu/internal/version"
	"github.com/arthur-debert/picomenu/pkg/cobrax/topics"
	"github.com/arthur-debert/picomenu/pkg/config"
	"github.com/arthur-debert/picomenu/pkg/logging"
	"github.com/arthur-debert/picomenu/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "picomenu",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	initTemplateFormatting()

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newCommandsCmd(opts))
	rootCmd.AddCommand(newProtocolCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	docs, err := fs.Sub(docsFS, "docs")
	if err == nil {
		_, err = topics.Initialize(rootCmd, docs, topics.Options{
			Extensions: []string{".md"},
			Renderer:   markdownRenderer,
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// markdownRenderer picks glamour output for terminals and plain text otherwise
func markdownRenderer(w io.Writer) topics.Renderer {
	return ui.NewMarkdown(ui.FormatAuto, w)
}

// loadConfig loads the configuration honouring --config and flag overrides
func loadConfig(opts *globalOptions, overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath, overrides)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		log.Info().Str("path", cfg.Source).Msg("Using config file")
	}
	return cfg, nil
}
