package sgr

import (
	"fmt"
	"io"
)

// Text is a deferred formatted value: a composed template plus its
// substitution arguments, rendered only when a consumer asks for it. A Text
// may be rendered any number of times without recomposing the template. It
// satisfies fmt.Stringer and fmt.Formatter, so it can be handed to the fmt
// family directly.
//
// Arguments are held in the slice as given; a Text carrying pointers must be
// rendered while those targets are still meaningful.
type Text struct {
	template string
	args     []any
}

func newText(template string, args []any) *Text {
	return &Text{template: template, args: args}
}

// Render produces the formatted bytes. The template always runs through the
// fmt machinery, so '%%' collapses to '%' with or without arguments.
func (t *Text) Render() string {
	return fmt.Sprintf(t.template, t.args...)
}

func (t *Text) String() string {
	return t.Render()
}

// Format writes the rendered value, letting a Text participate in outer
// fmt calls without pre-rendering.
func (t *Text) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(f, t.Render())
	default:
		fmt.Fprintf(f, "%%!%c(sgr.Text)", verb)
	}
}

// Template returns the composed template, escape sequences included.
func (t *Text) Template() string {
	return t.template
}

// Args returns a copy of the substitution arguments in order.
func (t *Text) Args() []any {
	return append([]any(nil), t.args...)
}
