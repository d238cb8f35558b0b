// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator. Field names in errors follow the
// json/query tag, and the "platform" tag accepts any supported platform.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParsePlatform(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: v}
}

// Validate reports the first failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return domainerrors.ErrValidation.WithMessage(first.Field() + " is required")
	case "platform":
		return domainerrors.ErrUnsupportedPlatform.WithDetails(fmt.Sprint(first.Value()))
	case "uuid":
		return domainerrors.ErrValidation.WithMessage(first.Field() + " must be a valid id")
	default:
		return domainerrors.ErrValidation.WithMessage(first.Field() + " is invalid")
	}
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return fld.Name
}
