package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	employeeID := "e-123"
	tokenString, expiresAt, err := svc.GenerateAccessToken("u-1", "jdoe", &employeeID, []string{"HR", "EMPLOYEE"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "u-1", userID)
	username, _ := token.Get("username")
	assert.Equal(t, "jdoe", username)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	empID, _ := token.Get("employee_id")
	assert.Equal(t, "e-123", empID)
	roles, ok := token.Get("roles")
	require.True(t, ok)
	assert.Len(t, roles, 2)
}

func TestGenerateAccessToken_NoEmployee(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("u-2", "admin", nil, []string{"ADMIN"})
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	_, ok := token.Get("employee_id")
	assert.False(t, ok, "employee_id claim should be absent for unlinked users")
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")
	_, _, err := svc.GenerateAccessToken("u-1", "jdoe", nil, nil)
	assert.Error(t, err)
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, expiresAt, err := svc.GenerateRefreshToken("u-9")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	userID, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u-9", userID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("u-9", "jdoe", nil, nil)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	exp := time.Now().Add(24 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("tok", exp)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
