package usecase

import (
	"fmt"
	"reflect"
	"strings"

	"unifeast/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RegisterProfileRules adds the profile-specific validation tags to v.
func RegisterProfileRules(v *validator.Validate) error {
	if err := v.RegisterValidation("identity_tier", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseIdentityTier(fl.Field().String())

		return ok
	}); err != nil {
		return errors.Wrap(err, "register identity_tier")
	}

	if err := v.RegisterValidation("dietary_tag", func(fl validator.FieldLevel) bool {
		_, ok := entity.LookupDietaryPreference(fl.Field().String())

		return ok
	}); err != nil {
		return errors.Wrap(err, "register dietary_tag")
	}

	return nil
}

// NewValidator returns a validator with the profile rules registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterProfileRules(v); err != nil {
		// Registration only fails for an empty tag or nil func.
		panic(err)
	}

	return v
}

// DescribeValidationError renders validator errors as "field: rule" pairs for the client.
func DescribeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, fieldErr.Field()+": "+describeRule(fieldErr))
	}

	return strings.Join(parts, "; ")
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "identity_tier":
		return "must be one of student, staff, visitor"
	case "dietary_tag":
		return fmt.Sprintf("unknown dietary preference %q", fieldErr.Value())
	case "excludesall":
		return "must not contain a comma"
	case "max":
		return "must be at most " + fieldErr.Param()
	case "required":
		return "is required"
	case "email":
		return "must be an email address"
	default:
		return "failed " + fieldErr.Tag()
	}
}

// jsonFieldName reports fields by their JSON name so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}
