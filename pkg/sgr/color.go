package sgr

import (
	"fmt"
	"strconv"
	"strings"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

// Base color numbers for BasicColor.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const byteMax = 255

func checkByte(param string, value int) error {
	if value < 0 || value > byteMax {
		return tinterrors.NewRangeError(param, value, byteMax)
	}
	return nil
}

// BasicColor builds one of the sixteen basic colors. Base must be 0-7.
func BasicColor(p Plane, base uint8, bright bool) (Color, error) {
	if base > 7 {
		return Color{}, tinterrors.NewRangeError("base color", int(base), 7)
	}
	return Color{form: formBasic, plane: p, base: base, bright: bright}, nil
}

// IndexedColor builds a 256-palette color. Index must be 0-255; the range is
// checked here, at the earliest point the value is known.
func IndexedColor(p Plane, index int) (Color, error) {
	if err := checkByte("index", index); err != nil {
		return Color{}, err
	}
	return Color{form: formIndexed, plane: p, index: index}, nil
}

// RGBColor builds a 24-bit color. Each component must be 0-255.
func RGBColor(p Plane, r, g, b int) (Color, error) {
	for _, ch := range [...]struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if err := checkByte(ch.name, ch.value); err != nil {
			return Color{}, err
		}
	}
	return Color{form: formRGB, plane: p, r: r, g: g, b: b}, nil
}

// ParseColor reads a foreground color from one of the accepted spellings:
// a basic color name with optional "bright" prefix ("red", "bright red",
// "bright-red"), a hex value ("#f00", "#ff0000", "0xff0000"), an "(r,g,b)"
// tuple with 0-255 integer or 0.0-1.0 float channels, or a bare 0-255
// palette index. Use WithPlane to move the result to the background.
func ParseColor(s string) (Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return Color{}, tinterrors.NewSyntaxError(0, "empty color")
	}

	for _, prefix := range [...]string{"#", "0x"} {
		if rest, ok := strings.CutPrefix(spec, prefix); ok {
			return parseHexColor(rest)
		}
	}

	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		return parseTupleColor(spec[1 : len(spec)-1])
	}

	if isDigits(spec) {
		index, err := strconv.Atoi(spec)
		if err != nil {
			return Color{}, tinterrors.NewSyntaxError(0, fmt.Sprintf("invalid color index %q", s))
		}
		return IndexedColor(Foreground, index)
	}

	return parseNamedColor(spec)
}

func parseNamedColor(spec string) (Color, error) {
	name := strings.ReplaceAll(spec, "-", " ")
	bright := false
	if rest, ok := strings.CutPrefix(name, "bright "); ok {
		bright = true
		name = rest
	}

	for base, candidate := range baseNames {
		if candidate == name {
			return BasicColor(Foreground, uint8(base), bright)
		}
	}
	return Color{}, tinterrors.NewSyntaxError(0, fmt.Sprintf("invalid color %q", spec))
}

func parseHexColor(digits string) (Color, error) {
	// Three-digit shorthand expands each nibble, CSS style: f80 -> ff8800.
	if len(digits) == 3 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, tinterrors.NewSyntaxError(0, fmt.Sprintf("invalid hex color %q", digits))
	}
	if value > 0xFFFFFF {
		return Color{}, tinterrors.NewRangeError("rgb value", int(value), 0xFFFFFF)
	}

	return RGBColor(Foreground, int(value>>16)&0xFF, int(value>>8)&0xFF, int(value)&0xFF)
}

func parseTupleColor(inner string) (Color, error) {
	channels, err := parseChannels(inner)
	if err != nil {
		return Color{}, err
	}
	return RGBColor(Foreground, channels[0], channels[1], channels[2])
}

// parseChannels reads three comma-separated RGB channels, each either a
// 0-255 integer or a 0.0-1.0 float that is scaled to 0-255.
func parseChannels(s string) ([3]int, error) {
	var channels [3]int

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return channels, tinterrors.NewSyntaxError(0, "rgb color needs exactly three channels")
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)

		if n, err := strconv.Atoi(part); err == nil {
			channels[i] = n
			continue
		}

		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return channels, tinterrors.NewSyntaxError(0, fmt.Sprintf("invalid rgb channel %q", part))
		}
		if f < 0 || f > 1 {
			return channels, tinterrors.NewSyntaxError(0, fmt.Sprintf("float rgb channel %q must be within 0.0-1.0", part))
		}
		channels[i] = int(f * byteMax)
	}

	return channels, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
