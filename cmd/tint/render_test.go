package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeTestTheme(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `version: "1.0"
name: test
styles:
  - name: alert
    fg: bright red
    attrs: [bold]
  - name: muted
    fg: "244"
    revert: total
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderStyleKindEmitsSequences(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "render", "--color=always", "--style", "red", "boom")
	require.NoError(t, err)
	require.Equal(t, "\x1b[31mboom\x1b[39m\n", out)
}

func TestRenderStripsSequencesWhenColorNever(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "render", "--color=never", "--style", "red", "boom")
	require.NoError(t, err)
	require.Equal(t, "boom\n", out)
}

func TestRenderSigilTemplate(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "render", "--color=always", "--style", "bold", "@, %s!", "hi")
	require.NoError(t, err)
	require.Equal(t, "\x1b[1mhi!\x1b[22m\n", out)
}

func TestRenderTotalRevertSigil(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "render", "--color=always", "--style", "green", "@*, %s", "ok")
	require.NoError(t, err)
	require.Equal(t, "\x1b[32mok\x1b[0m\n", out)
}

func TestRenderColorFamilies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		style    string
		template string
		want     string
	}{
		{"indexed foreground", "fg256", "196; x", "\x1b[38;5;196mx\x1b[39m\n"},
		{"rgb background", "bg-rgb", "0, 128, 255; x", "\x1b[48;2;0;128;255mx\x1b[49m\n"},
		{"hex shorthand", "#f00", "x", "\x1b[38;2;255;0;0mx\x1b[39m\n"},
		{"bright background", "bg-bright-blue", "x", "\x1b[104mx\x1b[49m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := runCommand(t, "render", "--color=always", "--style", tt.style, tt.template)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRenderFlagStyle(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "render", "--color=always",
		"--fg", "red", "--attr", "bold", "--attr", "faint", "danger")
	require.NoError(t, err)
	require.Equal(t, "\x1b[1m\x1b[2m\x1b[31mdanger\x1b[39m\x1b[22m\n", out)
}

func TestRenderThemeEntry(t *testing.T) {
	t.Parallel()

	path := writeTestTheme(t)

	out, err := runCommand(t, "render", "--color=always",
		"--theme", path, "--style", "alert", "disk full")
	require.NoError(t, err)
	require.Equal(t, "\x1b[1m\x1b[91mdisk full\x1b[39m\x1b[22m\n", out)
}

func TestRenderThemeTemplateTakesNoSigils(t *testing.T) {
	t.Parallel()

	path := writeTestTheme(t)

	// Sigil characters are content on the theme path; the entry's own revert
	// setting governs the trailing sequence.
	out, err := runCommand(t, "render", "--color=never",
		"--theme", path, "--style", "alert", "@*, literal")
	require.NoError(t, err)
	require.Equal(t, "@*, literal\n", out)
}

func TestRenderThemeRequiresStyle(t *testing.T) {
	t.Parallel()

	path := writeTestTheme(t)

	_, err := runCommand(t, "render", "--theme", path, "text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--style")
}

func TestRenderUnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "render", "--style", "sparkly", "text")
	require.Error(t, err)
}

func TestRenderLiteralRejectsArguments(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "render", "--style", "bold", "plain", "extra")
	require.Error(t, err)

	var contentErr *tinterrors.ContentTypeError
	require.ErrorAs(t, err, &contentErr)
}

func TestRenderIndexOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "render", "--style", "fg256", "256; x")
	require.Error(t, err)

	var rangeErr *tinterrors.RangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestRenderRequiresSomeStyle(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "render", "text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--style")
}
