package sgr

// CSI is the two-byte control sequence introducer every SGR sequence starts
// with.
const CSI = "\x1b["

// Complete set sequences for each style kind, as untyped constants so they
// concatenate with other string constants at compile time.
const (
	SetBold          = CSI + "1m"
	SetFaint         = CSI + "2m"
	SetItalic        = CSI + "3m"
	SetUnderline     = CSI + "4m"
	SetBlink         = CSI + "5m"
	SetRapidBlink    = CSI + "6m"
	SetInvert        = CSI + "7m"
	SetConceal       = CSI + "8m"
	SetStrikethrough = CSI + "9m"
	SetSuperscript   = CSI + "73m"
	SetSubscript     = CSI + "74m"
)

// Complete reset sequences, one per revert group.
const (
	ResetAll           = CSI + "0m"
	ResetIntensity     = CSI + "22m"
	ResetItalic        = CSI + "23m"
	ResetUnderline     = CSI + "24m"
	ResetBlink         = CSI + "25m"
	ResetInvert        = CSI + "27m"
	ResetConceal       = CSI + "28m"
	ResetStrikethrough = CSI + "29m"
	ResetScript        = CSI + "75m"
	ResetForeground    = CSI + "39m"
	ResetBackground    = CSI + "49m"
)
