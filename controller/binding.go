package controller

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// SG mobile numbers: 8 digits starting with 8 or 9.
	phonePattern = regexp.MustCompile(`^[89][0-9]{7}$`)
	// Employee ids: UI followed by exactly 7 digits.
	employeeIDPattern = regexp.MustCompile(`^UI[0-9]{7}$`)
)

// RegisterValidators installs the sgphone and employeeid rules on gin's
// binding engine so request structs can use them as binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("sgphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("employeeid", func(fl validator.FieldLevel) bool {
		return employeeIDPattern.MatchString(fl.Field().String())
	})
}
