package common

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestFieldErrors_ErrorIsSorted(t *testing.T) {
	fe := FieldErrors{"password": "Password field is required", "email": "Email is invalid"}
	assert.Equal(t, "email: Email is invalid; password: Password field is required", fe.Error())
}

func TestNewFieldError_MatchesSentinelAndExposesFields(t *testing.T) {
	err := NewFieldError(ErrorAlreadyExists, "email", "User already exists. Please login.")

	require.True(t, errors.Is(err, ErrorAlreadyExists))
	assert.False(t, errors.Is(err, ErrorValidation))

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, FieldErrors{"email": "User already exists. Please login."}, fe)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 6), b)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
