package validator

import (
	"log"

	"farmline/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the application's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-type': the two account types this market knows about.
	mustRegister("is-user-type", validateUserType)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return models.UserType(value).IsValid()
}
