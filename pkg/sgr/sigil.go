package sgr

import (
	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

// OutputMode selects the representation an invocation produces.
type OutputMode uint8

const (
	// OutputLiteral builds a plain string by direct concatenation of fixed
	// text. No formatting machinery runs.
	OutputLiteral OutputMode = iota
	// OutputFormat builds a deferred *Text that renders on demand.
	OutputFormat
	// OutputString renders eagerly into a new string at the call site.
	OutputString
	// OutputConstFormat delegates rendering to the registered Formatter and
	// yields a ConstText.
	OutputConstFormat
)

func (m OutputMode) String() string {
	switch m {
	case OutputFormat:
		return "format"
	case OutputString:
		return "string"
	case OutputConstFormat:
		return "const-format"
	default:
		return "literal"
	}
}

func (m OutputMode) takesTemplate() bool {
	return m != OutputLiteral
}

// RevertMode selects the trailing sequence appended after the content.
type RevertMode uint8

const (
	// RevertSingle appends the reset code of the kind's revert group.
	RevertSingle RevertMode = iota
	// RevertTotal appends the reset-all sequence.
	RevertTotal
	// RevertNone appends nothing; the formatting is left in effect.
	RevertNone
)

func (m RevertMode) String() string {
	switch m {
	case RevertTotal:
		return "total"
	case RevertNone:
		return "none"
	default:
		return "single"
	}
}

// ParseSigils consumes the sigil prefix of an invocation and returns the
// selected modes along with the unconsumed remainder. At most one output
// sigil ('%' format, '@' string, '#' const-format) followed by at most one
// revert sigil ('!' none, '*' total) is recognized, in that order; a single
// comma after the sigils is consumed and discarded. An output sigil after a
// revert sigil is a SyntaxError, and '#' without a registered formatter is an
// UnsupportedModeError.
func ParseSigils(src string) (OutputMode, RevertMode, string, error) {
	output := OutputLiteral
	revert := RevertSingle
	sigil := false
	i := 0

	if i < len(src) {
		switch src[i] {
		case '%':
			output = OutputFormat
			sigil = true
			i++
		case '@':
			output = OutputString
			sigil = true
			i++
		case '#':
			if !HasFormatter() {
				return OutputLiteral, RevertSingle, "", errUnsupportedConstFormat()
			}
			output = OutputConstFormat
			sigil = true
			i++
		}
	}

	if i < len(src) {
		switch src[i] {
		case '!':
			revert = RevertNone
			sigil = true
			i++
		case '*':
			revert = RevertTotal
			sigil = true
			i++
		}
	}

	// The grammar is not commutative: when a revert sigil was read without a
	// preceding output sigil, a following output sigil is misordered rather
	// than part of the content.
	if output == OutputLiteral && revert != RevertSingle && i < len(src) {
		switch src[i] {
		case '%', '@', '#':
			return OutputLiteral, RevertSingle, "", tinterrors.NewSyntaxError(i, "output sigil must precede revert sigil")
		}
	}

	if sigil && i < len(src) && src[i] == ',' {
		i++
	}

	return output, revert, src[i:], nil
}
