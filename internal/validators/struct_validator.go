// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/go-playground/validator/v10"
)

// StructValidator validates request models through their `validate` struct tags.
// Violations are reported with JSON field paths instead of Go field names.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonTagName)
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	// built-in tags are always registered, so this cannot fail
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &StructValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only the
// named Go fields (namespaced relative to obj, e.g. "Exercises[0].Reps") are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", obj, err)
	}

	violations := make([]models.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, models.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}

	return NewValidationError(violations...)
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// maxBytes bounds the encoded length of a string, unlike max which counts
// runes. bcrypt rejects passwords longer than 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func dateValue(v reflect.Value) any {
	if d, ok := v.Interface().(models.Date); ok {
		return d.Time()
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace:
// "WorkoutInput.exercises[1].reps" becomes "exercises[1].reps".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func message(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		return lengthOrValue(fe.Kind(), "at least", param)
	case "max":
		return lengthOrValue(fe.Kind(), "at most", param)
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes long", param)
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		if param == "" {
			return "must not be in the future"
		}
		return "must be less than or equal to " + param
	default:
		return "is invalid"
	}
}

func lengthOrValue(kind reflect.Kind, bound, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s items", bound, param)
	default:
		return fmt.Sprintf("must be %s %s", bound, param)
	}
}
