package theme

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	styleNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			return styleNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_spec", func(fl validator.FieldLevel) bool {
			_, err := sgr.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			_, ok := sgr.StyleKindByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the theme.
func Validate(t *Theme) error {
	if t == nil {
		return tinterrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(t); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(t.Styles))
	for i, entry := range t.Styles {
		if _, exists := seen[entry.Name]; exists {
			return tinterrors.NewValidationError(fieldForStyle(i, "name"), fmt.Sprintf("duplicate style name %q", entry.Name), nil)
		}
		seen[entry.Name] = struct{}{}

		if entry.Fg == "" && entry.Bg == "" && len(entry.Attrs) == 0 {
			return tinterrors.NewValidationError(fieldForStyle(i, ""), "style must set at least one of fg, bg, attrs", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tinterrors.NewValidationError(field, msg, err)
	}

	return tinterrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForStyle(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("styles[%d]", index)
	}
	return fmt.Sprintf("styles[%d].%s", index, field)
}
