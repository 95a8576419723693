// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names and knows
// the report_status tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		return entity.ReportStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidationFailed describing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param()
	case "report_status":
		return field + " must be one of dirty, cleaning, in-progress, cleaned, completed"
	default:
		return field + " failed on " + fe.Tag()
	}
}
