package sgr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubFormatter struct{}

func (stubFormatter) Format(template string, args ...any) (string, error) {
	return fmt.Sprintf(template, args...), nil
}

func TestRegisterFormatter(t *testing.T) {
	ResetFormatter()
	t.Cleanup(ResetFormatter)

	require.False(t, HasFormatter())
	require.Error(t, RegisterFormatter(nil))

	require.NoError(t, RegisterFormatter(stubFormatter{}))
	require.True(t, HasFormatter())

	require.Error(t, RegisterFormatter(stubFormatter{}), "second registration must fail")
}

func TestConstTextIsDistinctFromString(t *testing.T) {
	t.Parallel()

	text := ConstText("\x1b[1mhi\x1b[22m")
	require.Equal(t, "\x1b[1mhi\x1b[22m", text.String())
}
