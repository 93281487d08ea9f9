package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
}

func TestValidate_Passes(t *testing.T) {
	err := Validate(signupForm{Email: "user@example.com", Age: 30})
	assert.NoError(t, err)
}

func TestValidate_ReturnsFieldErrors(t *testing.T) {
	err := Validate(signupForm{Email: "not-an-email", Age: 12})
	require.Error(t, err)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "gte", fields["Age"])
	assert.Contains(t, err.Error(), "Email: email")
	assert.Contains(t, err.Error(), "Age: gte")
}
