package jwt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token := CreateToken("user-42", 1)
	require.NotEmpty(t, token)

	payload, valid := ParseToken(token)
	require.True(t, valid)
	require.Equal(t, "user-42", payload.UserID)
	require.Equal(t, 1, payload.RoleID)
	require.Greater(t, payload.ExpiresAt, payload.IssuedAt)
}

func TestParseGarbage(t *testing.T) {
	for _, s := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		payload, valid := ParseToken(s)
		require.False(t, valid)
		require.Nil(t, payload)
	}
}

func TestParseTamperedToken(t *testing.T) {
	token := CreateToken("user-42", 0)
	// 篡改签名段
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("x", len(parts[2]))

	_, valid := ParseToken(tampered)
	require.False(t, valid)
}
