// Package validation runs go-playground struct validation and converts its
// errors into domain validation errors keyed by JSON field path.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// MessageFunc returns the user-facing message for a failed field. Returning
// "" falls back to DefaultMessage.
type MessageFunc func(field string, fe validator.FieldError) string

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("whatsapp", func(fl validator.FieldLevel) bool {
			return domain.ValidWhatsApp(fl.Field().String())
		})

		_ = v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			return style.IsColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates v. Failures come back as domain.ValidationErrors in
// field order; any other error is returned as is.
func Struct(v any, msg MessageFunc) error {
	return convert(validatorInstance().Struct(v), msg)
}

// Var validates a single value under tag, reporting failures against field.
func Var(field string, value any, tag string) error {
	err := validatorInstance().Var(value, tag)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	return domain.ValidationErrors{domain.NewValidationError(field, DefaultMessage(field, ves[0]))}
}

func convert(err error, msg MessageFunc) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	out := make(domain.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		m := ""
		if msg != nil {
			m = msg(field, fe)
		}
		if m == "" {
			m = DefaultMessage(field, fe)
		}
		out = append(out, domain.NewValidationError(field, m))
	}
	return out
}

// fieldPath drops the root struct name: "Form.services[0].name" -> "services[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// DefaultMessage renders a generic message from the failed tag.
func DefaultMessage(field string, fe validator.FieldError) string {
	label := field
	if i := strings.LastIndexByte(label, '.'); i >= 0 {
		label = label[i+1:]
	}
	label = strings.ReplaceAll(label, "_", " ")

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s characters or less", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("at least %s %s required", fe.Param(), label)
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "whatsapp":
		return "Please enter a valid WhatsApp number"
	case "csscolor":
		return label + " must be a valid color"
	case "url", "http_url":
		return label + " must be a valid URL"
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", label, fe.Tag())
}
