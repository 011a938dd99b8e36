package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/coreman2200/opcstrip/internal/render"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("colorhex", func(fl validator.FieldLevel) bool {
			return render.IsColor(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks c against its struct tags.
func Validate(c *Config) error {
	if c == nil {
		return &ValidationError{Field: "config", Message: "configuration is nil"}
	}
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	if c.Driver == "preview" && c.Preview.Addr == "" {
		return &ValidationError{Field: "preview.addr", Message: "required when driver is preview"}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return &ValidationError{Field: field, Message: msg, Err: err}
	}
	return &ValidationError{Field: "config", Message: err.Error(), Err: err}
}

// yamlFieldName drops the root type and inlined struct names from the
// namespace, leaving the yaml key path.
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	var keep []string
	for _, part := range parts[1:] {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		keep = append(keep, part)
	}
	return strings.Join(keep, ".")
}
