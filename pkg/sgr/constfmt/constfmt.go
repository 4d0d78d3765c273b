// Package constfmt provides the const-format collaborator: a formatter that
// only accepts fixed, constant-representable arguments. Importing it for
// side effects enables the const-format output mode.
package constfmt

import (
	"fmt"
	"reflect"

	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

type constFormatter struct{}

// New creates the constant-argument formatter.
func New() sgr.Formatter {
	return &constFormatter{}
}

func init() {
	if err := sgr.RegisterFormatter(New()); err != nil {
		panic(err)
	}
}

// Format renders the template after verifying every argument is a constant
// value. Arguments that carry behavior or identity rather than a value, such
// as pointers, channels or functions, are rejected.
func (f *constFormatter) Format(template string, args ...any) (string, error) {
	for i, arg := range args {
		if !constant(arg) {
			return "", fmt.Errorf("argument %d (%T) is not a constant value", i, arg)
		}
	}
	return fmt.Sprintf(template, args...), nil
}

func constant(arg any) bool {
	switch arg.(type) {
	case nil:
		return false
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return true
	}

	// Named types with a constant-representable underlying kind still
	// qualify, e.g. time.Duration or a local enum.
	switch reflect.ValueOf(arg).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
