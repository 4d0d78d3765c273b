package sgr

import (
	"testing"

	"github.com/stretchr/testify/require"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

func TestParseSigilsSelectsModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		output    OutputMode
		revert    RevertMode
		remainder string
	}{
		{"no sigils", "hello", OutputLiteral, RevertSingle, "hello"},
		{"format", "%hello", OutputFormat, RevertSingle, "hello"},
		{"string", "@hello", OutputString, RevertSingle, "hello"},
		{"revert none", "!hello", OutputLiteral, RevertNone, "hello"},
		{"revert total", "*hello", OutputLiteral, RevertTotal, "hello"},
		{"string then none", "@!hello", OutputString, RevertNone, "hello"},
		{"format then total", "%*hello", OutputFormat, RevertTotal, "hello"},
		{"comma after sigils", "@*,hello", OutputString, RevertTotal, "hello"},
		{"comma after single sigil", "%,hello", OutputFormat, RevertSingle, "hello"},
		{"comma without sigils is content", ",hello", OutputLiteral, RevertSingle, ",hello"},
		{"only one comma is consumed", "@,,hello", OutputString, RevertSingle, ",hello"},
		{"empty input", "", OutputLiteral, RevertSingle, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			output, revert, remainder, err := ParseSigils(tc.src)
			require.NoError(t, err)
			require.Equal(t, tc.output, output)
			require.Equal(t, tc.revert, revert)
			require.Equal(t, tc.remainder, remainder)
		})
	}
}

func TestParseSigilsRejectsMisorderedSigils(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"!%x", "!@x", "*%x", "*@x", "*#x"} {
		_, _, _, err := ParseSigils(src)

		var syntaxErr *tinterrors.SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "input %q", src)
	}
}

func TestParseSigilsConstFormatNeedsFormatter(t *testing.T) {
	ResetFormatter()

	_, _, _, err := ParseSigils("#hello")

	var modeErr *tinterrors.UnsupportedModeError
	require.ErrorAs(t, err, &modeErr)
	require.Equal(t, "const-format", modeErr.Mode)
}

func TestParseSigilsConstFormatWithFormatter(t *testing.T) {
	ResetFormatter()
	require.NoError(t, RegisterFormatter(stubFormatter{}))
	t.Cleanup(ResetFormatter)

	output, revert, remainder, err := ParseSigils("#*hello")
	require.NoError(t, err)
	require.Equal(t, OutputConstFormat, output)
	require.Equal(t, RevertTotal, revert)
	require.Equal(t, "hello", remainder)
}

func TestParseSigilsPassesContentThroughUnchanged(t *testing.T) {
	t.Parallel()

	// Sigil characters later in the content are content, not sigils.
	_, _, remainder, err := ParseSigils("%say 100% or a@b")
	require.NoError(t, err)
	require.Equal(t, "say 100% or a@b", remainder)
}
