package sgr

import (
	"fmt"
	"strings"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

// Invocation is one parsed call of the textual DSL: a named style applied to
// content under the modes chosen by the sigil prefix.
type Invocation struct {
	Style    Style
	Output   OutputMode
	Template string
	Text     string
	Args     []any
}

// ParseInvocation parses the body of a DSL call for the named style. The
// body reads, in order: the sigil prefix, color parameters terminated by ';'
// when the name is a color family, then the content. In literal output mode
// the content is fixed text and substitution arguments are rejected; in the
// other modes it is a template for the arguments, defaulting to
// DefaultTemplate when empty.
func ParseInvocation(name, body string, args ...any) (*Invocation, error) {
	output, revert, rest, err := ParseSigils(body)
	if err != nil {
		return nil, err
	}
	rest = strings.TrimLeft(rest, " ")

	kind, family, err := KindByName(name)
	if err != nil {
		return nil, err
	}

	if family != nil {
		cut := strings.IndexByte(rest, ';')
		if cut < 0 {
			return nil, tinterrors.NewSyntaxError(0, fmt.Sprintf("style %q requires color parameters terminated by ';'", name))
		}
		kind, err = family.build(rest[:cut])
		if err != nil {
			return nil, err
		}
		rest = strings.TrimLeft(rest[cut+1:], " ")
	}

	inv := &Invocation{
		Style:  New(kind).WithRevert(revert),
		Output: output,
	}

	if output.takesTemplate() {
		inv.Template = rest
		inv.Args = args
		return inv, nil
	}

	if len(args) > 0 {
		return nil, tinterrors.NewContentTypeError("literal invocation takes no substitution arguments")
	}
	inv.Text = rest
	return inv, nil
}

// Eval produces the invocation's value in its native representation: string
// for literal and string modes, *Text for format mode, ConstText for
// const-format mode.
func (inv *Invocation) Eval() (any, error) {
	switch inv.Output {
	case OutputFormat:
		return inv.Style.Format(inv.Template, inv.Args...)
	case OutputString:
		return inv.Style.Sprintf(inv.Template, inv.Args...)
	case OutputConstFormat:
		return inv.Style.ConstFormat(inv.Template, inv.Args...)
	default:
		return inv.Style.Wrap(inv.Text)
	}
}

// Render produces the fully rendered bytes regardless of output mode. The
// bytes are identical across modes; only the representation differs.
func (inv *Invocation) Render() (string, error) {
	value, err := inv.Eval()
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case *Text:
		return v.Render(), nil
	case ConstText:
		return string(v), nil
	default:
		return "", fmt.Errorf("unexpected invocation value %T", value)
	}
}
