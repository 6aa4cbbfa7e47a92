//nolint:revive // types is a standard Go package name pattern
package types

// LoginRequest represents the login form submission.
// The tags drive field validation; see validation.ValidateLogin for the messages.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,loose_email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult is the outcome of validating a login form.
// A nil error pointer means the field passed.
type LoginResult struct {
	Valid         bool    `json:"valid"`
	EmailError    *string `json:"emailError"`
	PasswordError *string `json:"passwordError"`
}
