package theme

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a theme file from disk, validates it, and returns the
// resulting model.
func Parse(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinterrors.NewParseError(path, 0, err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, tinterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
