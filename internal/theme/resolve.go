package theme

import (
	"fmt"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

// Resolved is a theme entry compiled to its opening and closing escape
// sequences. Applying it is plain concatenation.
type Resolved struct {
	Name    string
	opening string
	closing string
}

// Resolve compiles a theme entry. Attributes open first, then the foreground
// and background colors; closing sequences run in reverse. With revert
// "total" a single reset-all closes everything, with "none" nothing does.
func Resolve(entry Entry) (*Resolved, error) {
	var kinds []sgr.Kind

	for _, attr := range entry.Attrs {
		kind, ok := sgr.StyleKindByName(attr)
		if !ok {
			return nil, tinterrors.NewValidationError(entry.Name, fmt.Sprintf("unknown attr %q", attr), nil)
		}
		kinds = append(kinds, kind)
	}

	for _, spec := range [...]struct {
		value string
		plane sgr.Plane
	}{{entry.Fg, sgr.Foreground}, {entry.Bg, sgr.Background}} {
		if spec.value == "" {
			continue
		}
		color, err := sgr.ParseColor(spec.value)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, color.WithPlane(spec.plane))
	}

	if len(kinds) == 0 {
		return nil, tinterrors.NewValidationError(entry.Name, "style must set at least one of fg, bg, attrs", nil)
	}

	revert := entry.revertMode()
	opening := ""
	closing := ""
	closedGroups := make(map[sgr.RevertGroup]struct{}, len(kinds))

	for _, kind := range kinds {
		codes, err := sgr.Resolve(kind, revert)
		if err != nil {
			return nil, err
		}
		opening += sgr.Sequence(codes.Set...)

		if revert != sgr.RevertSingle {
			continue
		}
		// One reset per group: bold+faint revert with a single 22.
		if _, done := closedGroups[kind.Group()]; done {
			continue
		}
		closedGroups[kind.Group()] = struct{}{}
		closing = sgr.Sequence(codes.Reset...) + closing
	}

	if revert == sgr.RevertTotal {
		closing = sgr.ResetAll
	}

	return &Resolved{Name: entry.Name, opening: opening, closing: closing}, nil
}

// Resolve compiles the named entry of the theme.
func (t *Theme) Resolve(name string) (*Resolved, error) {
	entry, ok := t.Entry(name)
	if !ok {
		return nil, tinterrors.NewValidationError(name, "style is not defined in the theme", nil)
	}
	return Resolve(entry)
}

// Apply wraps fixed text in the compiled sequences.
func (r *Resolved) Apply(text string) string {
	return r.opening + text + r.closing
}

// Sprintf renders a template between the compiled sequences.
func (r *Resolved) Sprintf(template string, args ...any) string {
	if template == "" {
		template = sgr.DefaultTemplate
	}
	return fmt.Sprintf(r.opening+template+r.closing, args...)
}
