package sgr

import (
	"fmt"
	"sync"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

// ConstText is the result of a const-format invocation. It is a defined type
// rather than a plain string so it cannot be concatenated with untyped
// string literals by simple juxtaposition; convert explicitly when needed.
type ConstText string

func (t ConstText) String() string {
	return string(t)
}

// Formatter renders a template whose arguments are all fixed values. It backs
// the const-format output mode and fails when an argument cannot be treated
// as a constant.
type Formatter interface {
	Format(template string, args ...any) (string, error)
}

var (
	formatterMu sync.RWMutex
	formatter   Formatter
)

// RegisterFormatter installs the const-format collaborator.
func RegisterFormatter(f Formatter) error {
	if f == nil {
		return fmt.Errorf("formatter is nil")
	}

	formatterMu.Lock()
	defer formatterMu.Unlock()

	if formatter != nil {
		return fmt.Errorf("formatter already registered")
	}

	formatter = f
	return nil
}

// HasFormatter reports whether a const-format collaborator is registered.
func HasFormatter() bool {
	formatterMu.RLock()
	defer formatterMu.RUnlock()
	return formatter != nil
}

func registeredFormatter() (Formatter, bool) {
	formatterMu.RLock()
	defer formatterMu.RUnlock()
	return formatter, formatter != nil
}

// ResetFormatter clears the registration (for tests).
func ResetFormatter() {
	formatterMu.Lock()
	defer formatterMu.Unlock()
	formatter = nil
}

func errUnsupportedConstFormat() error {
	return tinterrors.NewUnsupportedModeError(OutputConstFormat.String())
}
