package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// CommandInfo describes one menu command for display.
type CommandInfo struct {
	Name string `json:"name"`
	Help string `json:"help"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
			MarginBottom(1)
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0B7A75", Dark: "#4FD1C5"}).
			PaddingRight(2)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"})
)

// RenderCommands writes the command table to w in the given format.
func RenderCommands(w io.Writer, format Format, cmds []CommandInfo) error {
	switch Resolve(format, w) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cmds); err != nil {
			return errors.Wrap(err, errors.ErrIO, "failed to write command list")
		}
		return nil
	case FormatTerminal:
		return writeString(w, renderTerminal(cmds, Width(w)))
	default:
		return writeString(w, renderText(cmds))
	}
}

func renderText(cmds []CommandInfo) string {
	width := nameWidth(cmds)
	var b strings.Builder
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "%-*s  %s\n", width, cmd.Name, cmd.Help)
	}
	return b.String()
}

func renderTerminal(cmds []CommandInfo, width int) string {
	if len(cmds) == 0 {
		return mutedStyle.Render("No commands registered.") + "\n"
	}

	names := nameStyle.Width(nameWidth(cmds) + 2)
	help := helpStyle.MaxWidth(max(width-nameWidth(cmds)-2, 10))

	rows := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, names.Render(cmd.Name), help.Render(cmd.Help)))
	}

	title := titleStyle.Render(fmt.Sprintf("Commands (%d)", len(cmds)))
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")) + "\n"
}

func nameWidth(cmds []CommandInfo) int {
	width := 0
	for _, cmd := range cmds {
		width = max(width, lipgloss.Width(cmd.Name))
	}
	return width
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write output")
	}
	return nil
}
