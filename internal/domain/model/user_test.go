package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Normalize(t *testing.T) {
	req := RegisterRequest{
		Username: "  Root  ",
		Email:    "  Root@Example.COM ",
		Password: "hunter22",
	}
	req.Normalize()

	assert.Equal(t, "Root", req.Username, "username casing must be preserved")
	assert.Equal(t, "root@example.com", req.Email)
	assert.Equal(t, "hunter22", req.Password)
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Username: "root", Email: "root@example.com", Password: "hunter22"}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty username", RegisterRequest{Email: "a@b.com", Password: "hunter22"}},
		{"long username", RegisterRequest{Username: strings.Repeat("u", 65), Email: "a@b.com", Password: "hunter22"}},
		{"empty email", RegisterRequest{Username: "u", Password: "hunter22"}},
		{"bad email", RegisterRequest{Username: "u", Email: "not-an-address", Password: "hunter22"}},
		{"empty password", RegisterRequest{Username: "u", Email: "a@b.com"}},
		{"short password", RegisterRequest{Username: "u", Email: "a@b.com", Password: "short7!"}},
		{"oversized password", RegisterRequest{Username: "u", Email: "a@b.com", Password: strings.Repeat("p", 73)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	require.NoError(t, (&LoginRequest{Username: "root", Password: "123"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "123"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "root"}).Validate())
}
