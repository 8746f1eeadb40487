package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator instance. Besides the built-in
// tags it understands "duration" (a non-negative time.ParseDuration string)
// and "glob" (a valid doublestar pattern).
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d >= 0
		})

		_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
			return doublestar.ValidatePattern(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks c and returns the first failure as a validation error.
func (c *Config) Validate() error {
	if err := Validator().Struct(c); err != nil {
		return ConvertValidationError(err)
	}
	return nil
}

// ConvertValidationError normalizes validator errors into gfcss
// validation errors.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return oerrors.NewValidationError(msg, "", field, hintFor(ve.Tag()))
	}

	return oerrors.NewValidationError(err.Error(), "", "", "")
}

// fieldName turns "Config.Watch.Ignore[0]" into "watch.ignore[0]".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

func hintFor(tag string) string {
	switch tag {
	case "duration":
		return `use a Go duration such as "250ms" or "1s"`
	case "glob":
		return `use a doublestar pattern such as "**/dist/**"`
	case "oneof":
		return "mode must be dev or build"
	default:
		return ""
	}
}
