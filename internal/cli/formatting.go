package cli

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !isTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}

// PrintError reports a command failure on w
func PrintError(w io.Writer, err error) {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		pterm.Error.WithWriter(w).Println(err.Error())
		return
	}
	_, _ = io.WriteString(w, "Error: "+err.Error()+"\n")
}

// printInfo writes a status line to w
func printInfo(w io.Writer, msg string) {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		pterm.Info.WithWriter(w).Println(msg)
		return
	}
	_, _ = io.WriteString(w, msg+"\n")
}
