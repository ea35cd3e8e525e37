package box

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	boxerrors "github.com/boxkit/boxkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	breakpointNamePattern = regexp.MustCompile(`^[a-z0-9]+$`)
	cssLengthPattern      = regexp.MustCompile(`^-?(\d+(\.\d+)?[a-z%]*|[a-zA-Z][a-zA-Z-]*)$`)
)

// validatorInstance configures and returns the shared validator used for
// theme files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("breakpoint_name", func(fl validator.FieldLevel) bool {
			return breakpointNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return cssLengthPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateFileConfig(fc *FileConfig) error {
	if fc == nil {
		return boxerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(fc); err != nil {
		return convertValidationError(err)
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
		return boxerrors.NewValidationError(field, msg, err)
	}

	return boxerrors.NewValidationError("config", err.Error(), err)
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
