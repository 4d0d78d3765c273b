package sgr

// RevertGroup identifies the set of kinds that share one reset code.
// Reverting any member of a group reverts all of them; this is inherent to
// SGR, which has one "off" code per attribute class, not per attribute.
type RevertGroup uint8

const (
	GroupIntensity RevertGroup = iota
	GroupItalic
	GroupUnderline
	GroupBlink
	GroupInvert
	GroupConceal
	GroupStrikethrough
	GroupScript
	GroupForeground
	GroupBackground
)

// Reset returns the SGR parameter that reverts every member of the group.
func (g RevertGroup) Reset() string {
	if int(g) < len(groupResets) {
		return groupResets[g]
	}
	return resetAll
}

func (g RevertGroup) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

type styleEntry struct {
	name  string
	set   string
	group RevertGroup
}

// styleTable is the registry of style kinds: one set code and one revert
// group per kind. Superscript/subscript (73/74, reset 75) are a terminal
// extension that not every emulator implements.
var styleTable = [...]styleEntry{
	Bold:          {"bold", "1", GroupIntensity},
	Faint:         {"faint", "2", GroupIntensity},
	Italic:        {"italic", "3", GroupItalic},
	Underline:     {"underline", "4", GroupUnderline},
	Blink:         {"blink", "5", GroupBlink},
	RapidBlink:    {"rapid-blink", "6", GroupBlink},
	Invert:        {"invert", "7", GroupInvert},
	Conceal:       {"conceal", "8", GroupConceal},
	Strikethrough: {"strikethrough", "9", GroupStrikethrough},
	Superscript:   {"superscript", "73", GroupScript},
	Subscript:     {"subscript", "74", GroupScript},
}

var groupResets = [...]string{
	GroupIntensity:     "22",
	GroupItalic:        "23",
	GroupUnderline:     "24",
	GroupBlink:         "25",
	GroupInvert:        "27",
	GroupConceal:       "28",
	GroupStrikethrough: "29",
	GroupScript:        "75",
	GroupForeground:    "39",
	GroupBackground:    "49",
}

var groupNames = [...]string{
	GroupIntensity:     "intensity",
	GroupItalic:        "italic",
	GroupUnderline:     "underline",
	GroupBlink:         "blink",
	GroupInvert:        "invert",
	GroupConceal:       "conceal",
	GroupStrikethrough: "strikethrough",
	GroupScript:        "script",
	GroupForeground:    "foreground",
	GroupBackground:    "background",
}

// resetAll is the SGR parameter that clears every attribute at once.
const resetAll = "0"

var baseNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}
