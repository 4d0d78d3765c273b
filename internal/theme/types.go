// Package theme loads YAML documents that name reusable terminal styles and
// compiles them onto the sgr engine.
package theme

import (
	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

// Theme represents a full theme document.
type Theme struct {
	Version string  `yaml:"version" validate:"required,semver"`
	Name    string  `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Styles  []Entry `yaml:"styles" validate:"required,min=1,dive"`
}

// Entry names one reusable style: any combination of style attributes, a
// foreground color, and a background color, plus the revert behavior.
type Entry struct {
	Name   string   `yaml:"name" validate:"required,style_name"`
	Fg     string   `yaml:"fg,omitempty" validate:"omitempty,color_spec"`
	Bg     string   `yaml:"bg,omitempty" validate:"omitempty,color_spec"`
	Attrs  []string `yaml:"attrs,omitempty" validate:"omitempty,dive,attr_name"`
	Revert string   `yaml:"revert,omitempty" validate:"omitempty,oneof=single total none"`
}

func (e Entry) revertMode() sgr.RevertMode {
	switch e.Revert {
	case "total":
		return sgr.RevertTotal
	case "none":
		return sgr.RevertNone
	default:
		return sgr.RevertSingle
	}
}

// Entry returns the named style definition.
func (t *Theme) Entry(name string) (Entry, bool) {
	for _, entry := range t.Styles {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}
