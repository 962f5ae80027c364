package validator

import (
	"github.com/go-playground/validator/v10"

	"skiresort/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// "slot" restricts a field to the fixed reservation windows.
	_ = validate.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, s := range domain.ValidSlots() {
			if string(s) == v {
				return true
			}
		}
		return false
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
