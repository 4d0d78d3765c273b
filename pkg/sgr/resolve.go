package sgr

// Codes holds the resolved SGR parameter lists for one kind: the values that
// open the formatting and the values that revert it. Neither list is wrapped
// in escape syntax yet; see Sequence.
type Codes struct {
	Set   []string
	Reset []string
}

// Resolve looks up the set parameters for a kind and derives the reset
// parameters from the revert mode. RevertNone yields an empty reset list,
// which the assemblers translate into no trailing sequence at all. Range
// errors for runtime-computed color parameters surface here.
func Resolve(kind Kind, revert RevertMode) (Codes, error) {
	set, err := kind.setParams()
	if err != nil {
		return Codes{}, err
	}

	var reset []string
	switch revert {
	case RevertTotal:
		reset = []string{resetAll}
	case RevertSingle:
		reset = []string{kind.Group().Reset()}
	}

	return Codes{Set: set, Reset: reset}, nil
}
