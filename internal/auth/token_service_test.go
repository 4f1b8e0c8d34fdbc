package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	// Compact and URL-safe: three dot-separated base64url segments.
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret", 15*time.Minute)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	// Still valid just before expiry.
	svc.now = func() time.Time { return issuedAt.Add(14 * time.Minute) }
	subject, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", subject)

	// Expired once the clock passes issuedAt+ttl.
	svc.now = func() time.Time { return issuedAt.Add(16 * time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_BadSignature(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	// Swap in a forged payload; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"someone-else"}`))
	_, err = svc.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrTokenBadSignature)

	// A token signed with a different secret fails the same way.
	other := NewTokenService("other-secret", 30*time.Minute)
	foreign, err := other.Issue("user-42")
	require.NoError(t, err)
	_, err = svc.Verify(foreign)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "invalid base64", token: "!!.!!.!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestTokenService_TamperNeverSucceeds(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		subject, err := svc.Verify(string(mutated))
		if err == nil {
			// The only acceptable no-error outcome is the identical subject
			// from an equivalent encoding; anything else is a forgery.
			assert.Equal(t, "user-42", subject, "tampered byte %d verified with wrong subject", i)
			continue
		}
		assert.Contains(t, []error{ErrTokenMalformed, ErrTokenBadSignature, ErrTokenExpired}, err)
	}
}
