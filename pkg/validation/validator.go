package validation

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
)

// kenyanPhonePattern accepts Safaricom/Airtel style numbers with an optional
// +254/254/0 prefix followed by 7 or 1 and eight digits.
var kenyanPhonePattern = regexp.MustCompile(`^(\+254|254|0)?[17]\d{8}$`)

// IsKenyanPhone reports whether the value matches the Kenyan mobile pattern.
func IsKenyanPhone(phone string) bool {
	return kenyanPhonePattern.MatchString(phone)
}

// New returns a configured validator with the kenyan_phone validation
// registered for customer detail checks.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterValidation("kenyan_phone", func(fl validatorv10.FieldLevel) bool {
		return IsKenyanPhone(fl.Field().String())
	})

	return v
}
