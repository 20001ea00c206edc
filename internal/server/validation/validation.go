// Package validation checks registration and login input and reports
// problems as a field-keyed message map suitable for returning to clients.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/server/models"
)

// messages maps json field name -> validator tag -> client message.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name field is required",
		"min":      "Name must be between 2 and 30 characters",
		"max":      "Name must be between 2 and 30 characters",
	},
	"email": {
		"required": "Email field is required",
		"email":    "Email is invalid",
	},
	"password": {
		"required":  "Password field is required",
		"min":       "Password must be at least 6 characters",
		"max":       "Password must be at most 30 characters",
		"bcryptmax": "Password must be at most 72 bytes",
	},
	"password2": {
		"required": "Confirm Password field is required",
		"eqfield":  "Passwords must match",
	},
}

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// max counts runes; bcrypt limits bytes
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return v
}

// ValidateRegister returns nil when req is acceptable.
func ValidateRegister(req models.RegisterRequest) common.FieldErrors {
	return check(req)
}

// ValidateLogin returns nil when req is acceptable.
func ValidateLogin(req models.LoginRequest) common.FieldErrors {
	return check(req)
}

func check(v any) common.FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// non-struct input
		panic(err)
	}

	out := make(common.FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		out[field] = msg
	}
	return out
}
