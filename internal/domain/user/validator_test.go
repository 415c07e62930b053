package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator_ValidateEmail(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name        string
		email       string
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid email",
			email:   "anna@example.com",
			wantErr: false,
		},
		{
			name:    "valid with plus tag",
			email:   "anna+vokabeln@example.com",
			wantErr: false,
		},
		{
			name:        "empty",
			email:       "",
			wantErr:     true,
			expectedErr: "email is required",
		},
		{
			name:        "missing domain",
			email:       "anna@",
			wantErr:     true,
			expectedErr: "not a valid address",
		},
		{
			name:        "missing at sign",
			email:       "anna.example.com",
			wantErr:     true,
			expectedErr: "not a valid address",
		},
		{
			name:        "display name form rejected",
			email:       "Anna <anna@example.com>",
			wantErr:     true,
			expectedErr: "not a valid address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidatePassword(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name        string
		password    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "valid password",
			password: "testpassword123",
			wantErr:  false,
		},
		{
			name:     "exactly minimum length",
			password: strings.Repeat("a", MinPasswordLen),
			wantErr:  false,
		},
		{
			name:        "too short",
			password:    "short",
			wantErr:     true,
			expectedErr: "password must be at least 8 characters",
		},
		{
			name:        "too long",
			password:    strings.Repeat("a", MaxPasswordLen+1),
			wantErr:     true,
			expectedErr: "password must be at most 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidateRegister(t *testing.T) {
	validator := NewCredentialsValidator()

	assert.NoError(t, validator.ValidateRegister("anna@example.com", "testpassword123"))
	assert.Error(t, validator.ValidateRegister("", "testpassword123"))
	assert.Error(t, validator.ValidateRegister("anna@example.com", "short"))
}
