package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs `validate` tags and reports every failing field.
func ValidateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrInvalidInput(err.Error())
	}
	fields := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, ve.Field()+" ("+ve.Tag()+")")
	}
	return ErrInvalidInput("Invalid input: " + strings.Join(fields, ", "))
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// NormalizePhoneNumber validates a phone number for the region and returns it
// in E.164 form.
func NormalizePhoneNumber(phoneNumber, region string) (string, error) {
	p, err := libphonenumber.Parse(strings.TrimSpace(phoneNumber), region)
	if err != nil {
		return "", ErrInvalidInput("Invalid phone")
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", ErrInvalidInput("Invalid phone")
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
