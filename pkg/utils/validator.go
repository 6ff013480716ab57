package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	NameMinLength     = 20
	NameMaxLength     = 60
	PasswordMinLength = 8
	PasswordMaxLength = 16
	AddressMaxLength  = 400
	passwordSpecials  = "!@#$%^&*"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "name", func(fl validator.FieldLevel) bool { return IsValidName(fl.Field().String()) })
	mustRegister(v, "email_addr", func(fl validator.FieldLevel) bool { return IsValidEmail(fl.Field().String()) })
	mustRegister(v, "password", func(fl validator.FieldLevel) bool { return IsValidPassword(fl.Field().String()) })
	mustRegister(v, "address", func(fl validator.FieldLevel) bool { return IsValidAddress(fl.Field().String()) })

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// IsValidName checks the display name length in characters.
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= NameMinLength && n <= NameMaxLength
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires 8-16 characters with an ASCII uppercase letter and one of !@#$%^&*.
func IsValidPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < PasswordMinLength || n > PasswordMaxLength {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

func IsValidAddress(address string) bool {
	n := utf8.RuneCountInString(address)
	return n >= 1 && n <= AddressMaxLength
}

// ValidateStruct returns the failing fields keyed by JSON name, or nil.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			errs[fe.Field()] = getErrorMessage(fe)
		}
		return errs
	}

	errs["_"] = err.Error()
	return errs
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "name":
		return fmt.Sprintf("Must be between %d and %d characters", NameMinLength, NameMaxLength)
	case "email_addr":
		return "Invalid email format"
	case "password":
		return fmt.Sprintf("Must be %d-%d characters with at least one uppercase letter and one of %s",
			PasswordMinLength, PasswordMaxLength, passwordSpecials)
	case "address":
		return fmt.Sprintf("Must be between 1 and %d characters", AddressMaxLength)
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
