// Package validation provides form validation for the dashboard's user input.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobtracker/internal/types"
)

// MinPasswordLength is the shortest password the login form accepts.
const MinPasswordLength = 8

// Login form messages, shown next to the offending field.
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Email is invalid"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters"
)

// looseEmail accepts anything shaped like text@text.text.
// It is deliberately weaker than validator's RFC 5322 "email" rule.
var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

// loginMessages maps "<json field>.<failed tag>" to the user-facing message.
var loginMessages = map[string]string{
	"email.required":    MsgEmailRequired,
	"email.loose_email": MsgEmailInvalid,
	"password.required": MsgPasswordRequired,
	"password.min":      MsgPasswordTooShort,
}

var validate = New()

// New returns a validator with the dashboard's custom rules registered.
// Field names in errors use the json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateLogin checks a login form. Each field is judged independently so
// both messages can be reported at once.
func ValidateLogin(email, password string) types.LoginResult {
	req := types.LoginRequest{Email: email, Password: password}
	result := types.LoginResult{Valid: true}

	err := validate.Struct(req)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable on programmer error (non-struct input).
		panic(err)
	}

	result.Valid = false
	for _, fe := range fieldErrs {
		msg, ok := loginMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			continue
		}
		switch fe.Field() {
		case "email":
			result.EmailError = &msg
		case "password":
			result.PasswordError = &msg
		}
	}
	return result
}
