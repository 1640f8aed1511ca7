package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
)

var titlePattern = regexp.MustCompile(`^[\p{L}\p{N} _-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("title", func(fl validator.FieldLevel) bool {
		return titlePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateTitle checks a natural-key title. A nil title is rejected.
func ValidateTitle(title *string) error {
	if title == nil {
		return apperrors.NewInvalidInput("title", "title must not be null")
	}
	if strings.TrimSpace(*title) == "" {
		return apperrors.NewInvalidInput("title", "title must not be empty")
	}
	if !titlePattern.MatchString(*title) {
		return apperrors.NewInvalidInput("title", "title contains forbidden characters")
	}
	return nil
}

// validateStruct runs the validate tags of in and reports the first failure as InvalidInput.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewInvalidInput(fe.Field(), describe(fe))
	}
	return apperrors.NewInvalidInput("", err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "title":
		return fmt.Sprintf("%s contains forbidden characters", fe.Field())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
