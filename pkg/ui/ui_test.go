package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []ui.CommandInfo{
	{Name: "help", Help: "Lists available commands"},
	{Name: "version", Help: "Shows version"},
	{Name: "hello", Help: "Greets you by name"},
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"Terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &buf))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &buf))

	// A regular file is never a terminal.
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f))
	assert.Equal(t, ui.DefaultWidth, ui.Width(f))
}

func TestDetectFormatHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestRenderCommandsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderCommands(&buf, ui.FormatText, sample))

	assert.Equal(t,
		"help     Lists available commands\n"+
			"version  Shows version\n"+
			"hello    Greets you by name\n",
		buf.String())
}

func TestRenderCommandsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderCommands(&buf, ui.FormatJSON, sample))

	var decoded []ui.CommandInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestRenderCommandsTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderCommands(&buf, ui.FormatTerminal, sample))

	out := buf.String()
	assert.Contains(t, out, "Commands (3)")
	for _, cmd := range sample {
		assert.Contains(t, out, cmd.Name)
		assert.Contains(t, out, cmd.Help)
	}

	buf.Reset()
	require.NoError(t, ui.RenderCommands(&buf, ui.FormatTerminal, nil))
	assert.Contains(t, buf.String(), "No commands registered.")
}

func TestMarkdown(t *testing.T) {
	doc := "# Title\n\nSome *text*.\n"

	t.Run("plain passes through", func(t *testing.T) {
		var buf bytes.Buffer
		md := ui.NewMarkdown(ui.FormatAuto, &buf)
		assert.True(t, md.Plain)
		assert.Equal(t, doc, md.Render(doc, ".md"))
	})

	t.Run("non markdown passes through", func(t *testing.T) {
		md := &ui.Markdown{Style: "notty"}
		assert.Equal(t, "plain text", md.Render("plain text", ".txt"))
	})

	t.Run("rendered", func(t *testing.T) {
		md := &ui.Markdown{Style: "notty", Width: 60}
		out := md.Render(doc, ".md")
		assert.Contains(t, out, "Title")
		assert.Contains(t, out, "text")
		assert.NotEqual(t, doc, out)
	})
}
