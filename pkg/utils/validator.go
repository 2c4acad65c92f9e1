package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
	facebookPattern = regexp.MustCompile(`^.+www.facebook.com/[^/]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report errors under the submitted form field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("facebook", func(fl validator.FieldLevel) bool {
		return facebookPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("joinedmax", validateJoinedMax)

	return v
}

// validateJoinedMax checks the length of a string slice joined with commas.
func validateJoinedMax(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	var limit int
	if _, err := fmt.Sscanf(fl.Param(), "%d", &limit); err != nil {
		return false
	}
	total := 0
	for i := 0; i < field.Len(); i++ {
		if i > 0 {
			total++
		}
		total += len(field.Index(i).String())
	}
	return total <= limit
}

// RegisterValidation adds a custom tag backed by a string predicate.
// Call it from package init only.
func RegisterValidation(tag string, valid func(string) bool) {
	_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	})
}

// ValidateStruct returns a message per failing field, or nil when data is valid.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			field := fieldName(err.Field())
			if _, seen := errors[field]; seen {
				continue
			}
			errors[field] = getErrorMessage(err)
		}
	}

	return errors
}

// genres[2] -> genres
func fieldName(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		return field[:i]
	}
	return field
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "url":
		return "Invalid URL"
	case "uuid":
		return "Must be a valid UUID"
	case "phone":
		return "Error, phone number must be in format xxx-xxx-xxxx"
	case "facebook":
		return "Incorrect facebook link"
	case "usstate":
		return "Not a valid US state abbreviation"
	case "genre":
		return "Not a valid genre choice"
	case "datetimeform":
		return "Not a valid datetime value"
	case "joinedmax":
		return fmt.Sprintf("Combined length must not exceed %s characters", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
