// Package sgr composes ANSI Select Graphic Rendition (SGR) escape sequences:
// the control codes that color and style terminal text. A Style pairs a kind
// (bold, underline, a foreground color, ...) with a revert mode describing
// which trailing sequence undoes it, and assembles output in one of four
// representations: direct concatenation, a deferred formatted value, an
// eagerly rendered string, or a const-format value produced by a registered
// collaborator.
package sgr

import (
	"fmt"
	"strconv"
)

// Plane distinguishes foreground from background color application.
type Plane uint8

const (
	Foreground Plane = iota
	Background
)

func (p Plane) String() string {
	if p == Background {
		return "bg"
	}
	return "fg"
}

// Kind is a style or color that can open an SGR sequence. It is implemented
// by StyleKind and Color only.
type Kind interface {
	fmt.Stringer

	// Group identifies the revert group whose reset code undoes this kind.
	Group() RevertGroup

	setParams() ([]string, error)
}

// StyleKind enumerates the text styling attributes.
type StyleKind uint8

const (
	Bold StyleKind = iota
	Faint
	Italic
	Underline
	Blink
	RapidBlink
	Invert
	Conceal
	Strikethrough
	Superscript
	Subscript
)

func (k StyleKind) valid() bool {
	return int(k) < len(styleTable)
}

func (k StyleKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("style(%d)", uint8(k))
	}
	return styleTable[k].name
}

// Group returns the revert group shared by every kind this one resets with.
func (k StyleKind) Group() RevertGroup {
	if !k.valid() {
		return GroupIntensity
	}
	return styleTable[k].group
}

func (k StyleKind) setParams() ([]string, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown style kind %d", uint8(k))
	}
	return []string{styleTable[k].set}, nil
}

type colorForm uint8

const (
	formBasic colorForm = iota
	formIndexed
	formRGB
)

// Color is one of the three SGR color shapes: a basic (8/16) color, an
// indexed (256-palette) color, or a 24-bit RGB color, applied to either
// plane. Construct values with BasicColor, IndexedColor, RGBColor or
// ParseColor; the zero value is foreground black.
type Color struct {
	form    colorForm
	plane   Plane
	base    uint8
	bright  bool
	index   int
	r, g, b int
}

// Plane reports which plane the color applies to.
func (c Color) Plane() Plane {
	return c.plane
}

// WithPlane returns a copy of the color applied to the given plane.
func (c Color) WithPlane(p Plane) Color {
	c.plane = p
	return c
}

// Group returns the foreground or background color revert group. Every color
// of one plane reverts with the same reset code regardless of its shape.
func (c Color) Group() RevertGroup {
	if c.plane == Background {
		return GroupBackground
	}
	return GroupForeground
}

func (c Color) String() string {
	switch c.form {
	case formIndexed:
		return fmt.Sprintf("%s(%d)", c.plane, c.index)
	case formRGB:
		return fmt.Sprintf("%s(%d,%d,%d)", c.plane, c.r, c.g, c.b)
	default:
		name := baseNames[c.base&7]
		if c.bright {
			name = "bright " + name
		}
		return fmt.Sprintf("%s(%s)", c.plane, name)
	}
}

func (c Color) setParams() ([]string, error) {
	selector := "38"
	if c.plane == Background {
		selector = "48"
	}

	switch c.form {
	case formIndexed:
		if err := checkByte("index", c.index); err != nil {
			return nil, err
		}
		return []string{selector, "5", strconv.Itoa(c.index)}, nil

	case formRGB:
		for _, ch := range [...]struct {
			name  string
			value int
		}{{"r", c.r}, {"g", c.g}, {"b", c.b}} {
			if err := checkByte(ch.name, ch.value); err != nil {
				return nil, err
			}
		}
		return []string{selector, "2", strconv.Itoa(c.r), strconv.Itoa(c.g), strconv.Itoa(c.b)}, nil

	default:
		offset := 30
		if c.bright {
			offset += 60
		}
		if c.plane == Background {
			offset += 10
		}
		return []string{strconv.Itoa(offset + int(c.base))}, nil
	}
}
