package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/jobtracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		wantValid   bool
		wantEmail   string
		wantPassErr string
	}{
		{
			name:      "valid credentials",
			email:     "a@b.com",
			password:  "longenough1",
			wantValid: true,
		},
		{
			name:        "both invalid",
			email:       "bad",
			password:    "short",
			wantEmail:   MsgEmailInvalid,
			wantPassErr: MsgPasswordTooShort,
		},
		{
			name:        "both missing",
			wantEmail:   MsgEmailRequired,
			wantPassErr: MsgPasswordRequired,
		},
		{
			name:      "missing dot after at",
			email:     "name@example",
			password:  "password123",
			wantEmail: MsgEmailInvalid,
		},
		{
			name:      "loose shape accepted",
			email:     "x@y.z",
			password:  "12345678",
			wantValid: true,
		},
		{
			name:        "seven characters",
			email:       "name@example.com",
			password:    "1234567",
			wantPassErr: MsgPasswordTooShort,
		},
		{
			name:      "embedded address is accepted",
			email:     "contact me at a@b.co please",
			password:  "password123",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLogin(tt.email, tt.password)

			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantEmail == "" {
				assert.Nil(t, result.EmailError)
			} else {
				require.NotNil(t, result.EmailError)
				assert.Equal(t, tt.wantEmail, *result.EmailError)
			}
			if tt.wantPassErr == "" {
				assert.Nil(t, result.PasswordError)
			} else {
				require.NotNil(t, result.PasswordError)
				assert.Equal(t, tt.wantPassErr, *result.PasswordError)
			}
		})
	}
}

func TestValidateLogin_JSONShape(t *testing.T) {
	data, err := json.Marshal(ValidateLogin("a@b.com", "longenough1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid": true, "emailError": null, "passwordError": null}`, string(data))

	data, err = json.Marshal(ValidateLogin("bad", "short"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"valid": false,
		"emailError": "Email is invalid",
		"passwordError": "Password must be at least 8 characters"
	}`, string(data))
}

func TestValidateLogin_MessagesAreIndependent(t *testing.T) {
	result := ValidateLogin("bad", "longenough1")
	require.NotNil(t, result.EmailError)
	assert.Nil(t, result.PasswordError)

	// Mutating one result must not leak into the next.
	*result.EmailError = "changed"
	again := ValidateLogin("bad", "longenough1")
	assert.Equal(t, MsgEmailInvalid, *again.EmailError)
}

func TestStruct_FirstFieldError(t *testing.T) {
	err := Struct(types.UploadedFile{Name: "cv.pdf"})
	require.Error(t, err)

	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "size", fe.Field)
	assert.Equal(t, "gt", fe.Rule)
	assert.Equal(t, "0", fe.Param)
	assert.True(t, strings.HasPrefix(fe.Error(), "validation error: size"))

	assert.NoError(t, Struct(types.UploadedFile{Name: "cv.pdf", Size: 1}))
}
