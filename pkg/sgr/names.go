package sgr

import (
	"fmt"
	"strconv"
	"strings"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

var styleAliases = map[string]StyleKind{
	"uline":  Underline,
	"blink2": RapidBlink,
	"strike": Strikethrough,
	"sup":    Superscript,
	"sub":    Subscript,
}

// StyleKindByName resolves a style kind from its name or a known alias.
func StyleKindByName(name string) (StyleKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind := range styleTable {
		if styleTable[kind].name == name {
			return StyleKind(kind), true
		}
	}
	kind, ok := styleAliases[name]
	return kind, ok
}

// colorFamily marks an invocation name whose color parameters arrive in the
// invocation body rather than in the name, such as fg256 or bg-rgb.
type colorFamily struct {
	plane Plane
	form  colorForm
}

var colorFamilies = map[string]colorFamily{
	"fg256":  {Foreground, formIndexed},
	"fg-256": {Foreground, formIndexed},
	"bg256":  {Background, formIndexed},
	"bg-256": {Background, formIndexed},
	"rgb":    {Foreground, formRGB},
	"fg-rgb": {Foreground, formRGB},
	"bg-rgb": {Background, formRGB},
}

// build turns the raw parameter text of a family invocation into a color.
func (f colorFamily) build(params string) (Kind, error) {
	switch f.form {
	case formIndexed:
		index, err := strconv.Atoi(strings.TrimSpace(params))
		if err != nil {
			return nil, tinterrors.NewSyntaxError(0, fmt.Sprintf("invalid color index %q", params))
		}
		return IndexedColor(f.plane, index)
	default:
		channels, err := parseChannels(params)
		if err != nil {
			return nil, err
		}
		return RGBColor(f.plane, channels[0], channels[1], channels[2])
	}
}

// KindByName resolves an invocation name to a kind: a style kind, a basic
// color (optionally "bg-"-prefixed, e.g. "bg-bright-red"), a hex or indexed
// color spelling, or a color family that still needs parameters. Exactly one
// of the returned kind and family is set on success.
func KindByName(name string) (Kind, *colorFamily, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if kind, ok := StyleKindByName(normalized); ok {
		return kind, nil, nil
	}

	if family, ok := colorFamilies[normalized]; ok {
		return nil, &family, nil
	}

	plane := Foreground
	spec := normalized
	for _, prefix := range [...]string{"bg-", "bg ", "on-", "on "} {
		if rest, ok := strings.CutPrefix(normalized, prefix); ok {
			plane = Background
			spec = rest
			break
		}
	}

	color, err := ParseColor(spec)
	if err != nil {
		return nil, nil, tinterrors.NewSyntaxError(0, fmt.Sprintf("unknown style %q", name))
	}
	return color.WithPlane(plane), nil, nil
}
