package card

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/metafront/internal/theme"
	apperrors "github.com/alexisbeaulieu97/metafront/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for card configs.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("card_field", func(fl validator.FieldLevel) bool {
			return theme.Field(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the card package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks the construction-time contract of a card config.
// ProgressRatio is deliberately not checked here: out-of-range values are
// clamped at render time.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}

	first := fieldErrs[0]
	return apperrors.NewValidationError(fieldPath(first), describe(first), err)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		if fe.Field() == "gradient" {
			return fmt.Sprintf("must contain exactly %s colours", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%v is not a hex colour", fe.Value())
	case "card_field":
		return fmt.Sprintf("unknown style field %q", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
