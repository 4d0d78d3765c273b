package sgr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextRendersOnDemand(t *testing.T) {
	t.Parallel()

	style, err := Fg(Green, false)
	require.NoError(t, err)

	counter := 0
	text, err := style.Format("%d lights", counterArg{&counter})
	require.NoError(t, err)
	require.Zero(t, counter, "construction must not render")

	first := text.Render()
	require.Equal(t, "\x1b[32m1 lights\x1b[39m", first)

	// Rendering again re-reads the arguments with the same template.
	second := text.Render()
	require.Equal(t, "\x1b[32m2 lights\x1b[39m", second)
	require.Equal(t, text.Template(), "\x1b[32m%d lights\x1b[39m")
}

// counterArg formats as an increasing integer so tests can observe when
// rendering actually happens.
type counterArg struct {
	n *int
}

func (c counterArg) Format(f fmt.State, verb rune) {
	*c.n++
	fmt.Fprintf(f, "%d", *c.n)
}

func TestTextCollapsesEscapesWithoutArgs(t *testing.T) {
	t.Parallel()

	text := newText("\x1b[1m100%% sure\x1b[22m", nil)
	require.Equal(t, "\x1b[1m100% sure\x1b[22m", text.Render())
	require.Equal(t, "\x1b[1m100%% sure\x1b[22m", text.Template())
}

func TestTextArgsAreCopied(t *testing.T) {
	t.Parallel()

	text := newText("%s", []any{"a"})
	args := text.Args()
	args[0] = "b"
	require.Equal(t, "a", text.Render())
}

func TestTextRejectsUnknownVerbs(t *testing.T) {
	t.Parallel()

	text := newText("x", nil)
	require.Equal(t, "%!d(sgr.Text)", fmt.Sprintf("%d", text))
}
