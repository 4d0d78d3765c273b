package sgr

import (
	"strings"
)

// Sequence wraps SGR parameters in escape syntax: CSI, the ';'-joined
// parameters, and the final 'm'. No parameters produce no sequence at all.
func Sequence(params ...string) string {
	if len(params) == 0 {
		return ""
	}
	return CSI + strings.Join(params, ";") + "m"
}

// DefaultTemplate substitutes for an omitted template in the template-taking
// output modes when substitution arguments are present. Without arguments an
// omitted template stays empty; a bare verb with nothing to consume would
// render as a missing-argument marker.
const DefaultTemplate = "%v"

// Style pairs a kind with a revert mode and assembles output around content.
// The zero value styles nothing useful; build values with New or the Fg/Bg
// helpers. Styles are values; With* methods return modified copies.
type Style struct {
	kind   Kind
	revert RevertMode
}

// New builds a Style for the kind with the default single-group reversion.
func New(kind Kind) Style {
	return Style{kind: kind, revert: RevertSingle}
}

// WithRevert returns a copy using the given revert mode.
func (s Style) WithRevert(revert RevertMode) Style {
	s.revert = revert
	return s
}

// Kind returns the styled kind.
func (s Style) Kind() Kind {
	return s.kind
}

// Revert returns the revert mode.
func (s Style) Revert() RevertMode {
	return s.revert
}

// frame resolves the style to its opening and closing escape sequences.
func (s Style) frame() (string, string, error) {
	codes, err := Resolve(s.kind, s.revert)
	if err != nil {
		return "", "", err
	}
	return Sequence(codes.Set...), Sequence(codes.Reset...), nil
}

// Wrap is the literal output mode: fixed text surrounded by the opening and
// closing sequences through direct concatenation. Nothing is interpreted.
func (s Style) Wrap(text string) (string, error) {
	open, close, err := s.frame()
	if err != nil {
		return "", err
	}
	return open + text + close, nil
}

// Format is the deferred output mode: the composed template and arguments
// are captured in a *Text and rendered only when consumed. An empty template
// stands for DefaultTemplate when arguments are given.
func (s Style) Format(template string, args ...any) (*Text, error) {
	composed, err := s.compose(template, len(args) > 0)
	if err != nil {
		return nil, err
	}
	return newText(composed, args), nil
}

// Sprintf is the eager string output mode: the same composition as Format,
// rendered immediately into a new string.
func (s Style) Sprintf(template string, args ...any) (string, error) {
	text, err := s.Format(template, args...)
	if err != nil {
		return "", err
	}
	return text.Render(), nil
}

// ConstFormat delegates rendering to the registered Formatter and returns
// the result as ConstText. Without a registered formatter the mode is
// unavailable and an UnsupportedModeError is returned.
func (s Style) ConstFormat(template string, args ...any) (ConstText, error) {
	f, ok := registeredFormatter()
	if !ok {
		return "", errUnsupportedConstFormat()
	}

	composed, err := s.compose(template, len(args) > 0)
	if err != nil {
		return "", err
	}

	rendered, err := f.Format(composed, args...)
	if err != nil {
		return "", err
	}
	return ConstText(rendered), nil
}

func (s Style) compose(template string, hasArgs bool) (string, error) {
	open, close, err := s.frame()
	if err != nil {
		return "", err
	}
	if template == "" && hasArgs {
		template = DefaultTemplate
	}
	return open + template + close, nil
}

// Fg builds a basic foreground color style.
func Fg(base uint8, bright bool) (Style, error) {
	return colorStyle(BasicColor(Foreground, base, bright))
}

// Bg builds a basic background color style.
func Bg(base uint8, bright bool) (Style, error) {
	return colorStyle(BasicColor(Background, base, bright))
}

// FgIndexed builds a 256-palette foreground style.
func FgIndexed(index int) (Style, error) {
	return colorStyle(IndexedColor(Foreground, index))
}

// BgIndexed builds a 256-palette background style.
func BgIndexed(index int) (Style, error) {
	return colorStyle(IndexedColor(Background, index))
}

// FgRGB builds a 24-bit foreground style.
func FgRGB(r, g, b int) (Style, error) {
	return colorStyle(RGBColor(Foreground, r, g, b))
}

// BgRGB builds a 24-bit background style.
func BgRGB(r, g, b int) (Style, error) {
	return colorStyle(RGBColor(Background, r, g, b))
}

func colorStyle(c Color, err error) (Style, error) {
	if err != nil {
		return Style{}, err
	}
	return New(c), nil
}
