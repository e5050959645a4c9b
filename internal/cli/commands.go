package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/picomenu/internal/version"
	"github.com/arthur-debert/picomenu/pkg/config"
	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCommandsCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: MsgCommandsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			// The menu is only built to read its command table.
			m := newDemoMenu(cfg, device.NewStream(strings.NewReader(""), io.Discard))
			if err := m.Err(); err != nil {
				return fmt.Errorf(MsgErrBuildMenu, err)
			}

			var infos []ui.CommandInfo
			for _, c := range m.Commands() {
				infos = append(infos, ui.CommandInfo{Name: c.Name(), Help: c.Help()})
			}
			return ui.RenderCommands(cmd.OutOrStdout(), f, infos)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}

func newProtocolCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "protocol",
		Short: MsgProtocolShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			content, err := docsFS.ReadFile("docs/protocol.md")
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "protocol guide is missing")
			}

			out := cmd.OutOrStdout()
			if f == ui.FormatJSON {
				return writeJSON(out, map[string]string{"protocol": string(content)})
			}
			_, err = io.WriteString(out, ui.NewMarkdown(f, out).Render(string(content), ".md"))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		format   string
		template bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if template {
				_, err := io.WriteString(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			if cfg.Source != "" {
				printInfo(cmd.ErrOrStderr(), fmt.Sprintf(MsgUsingConfig, cfg.Source))
			}

			data, err := config.Dump(cfg, format)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagDumpFormat)
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f == ui.FormatJSON {
				return writeJSON(out, version.Get())
			}
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", MsgFlagFormat)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompleteShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Hidden:    true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, args[0])
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "PICOMENU",
				Section: "1",
				Source:  "picomenu " + version.Version,
				Manual:  "picomenu manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
