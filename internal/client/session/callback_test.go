package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallbackURL(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantAccess  string
		wantRefresh string
		wantErr     error
	}{
		{
			name:        "valid pair",
			raw:         "https://app.example/auth/callback?access=CA&refresh=CR",
			wantAccess:  "CA",
			wantRefresh: "CR",
		},
		{
			name:    "provider error",
			raw:     "https://app.example/auth/callback?error=access_denied",
			wantErr: ErrCallbackFailed,
		},
		{
			name:    "missing refresh",
			raw:     "https://app.example/auth/callback?access=CA",
			wantErr: ErrCallbackIncomplete,
		},
		{
			name:    "no parameters",
			raw:     "https://app.example/auth/callback",
			wantErr: ErrCallbackIncomplete,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			access, refresh, err := ParseCallbackURL(tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAccess, access)
			assert.Equal(t, tc.wantRefresh, refresh)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "1",
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}
