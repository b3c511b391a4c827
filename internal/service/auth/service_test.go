package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
)

type fixture struct {
	svc    auth.AuthService
	users  *memory.UserRepository
	tokens *memory.RefreshTokenRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:  memory.NewUserRepository(),
		tokens: memory.NewRefreshTokenRepository(),
	}
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	f.svc = NewAuthService(nil, f.users, jwtService, f.tokens)
	return f
}

func (f *fixture) seedUser(t *testing.T, username, email, password string, roles ...user.Role) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	if len(roles) == 0 {
		roles = []user.Role{user.RoleEmployee}
	}
	id := uuid.NewString()
	f.users.Seed(user.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Roles:        roles,
	})
	return id
}

func TestLogin(t *testing.T) {
	t.Run("by username", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		resp, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "asha", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "asha", resp.User.Username)
	})

	t.Run("email works in the username field", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		resp, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "asha@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "asha", resp.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		_, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "asha", Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("oauth-only account has no password", func(t *testing.T) {
		f := newFixture(t)
		f.users.Seed(user.User{
			ID:       uuid.NewString(),
			Username: "googleonly",
			Email:    "googleonly@example.com",
			Roles:    []user.Role{user.RoleEmployee},
		})

		_, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "googleonly", Password: "anything"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	t.Run("defaults to the employee role", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.svc.Register(context.Background(), auth.RegisterRequest{
			Username: "binod",
			Email:    "binod@example.com",
			Password: "longenough",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"EMPLOYEE"}, resp.User.Roles)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "binod", "binod@example.com", "longenough")

		_, err := f.svc.Register(context.Background(), auth.RegisterRequest{
			Username: "binod",
			Email:    "other@example.com",
			Password: "longenough",
		})
		assert.ErrorIs(t, err, user.ErrUsernameExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "binod", "binod@example.com", "longenough")

		_, err := f.svc.Register(context.Background(), auth.RegisterRequest{
			Username: "other",
			Email:    "binod@example.com",
			Password: "longenough",
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("issues a fresh access token", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		login, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "asha", Password: "s3cret-pass"})
		require.NoError(t, err)

		resp, err := f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newFixture(t)
		userID := f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		jwtService := jwt.NewJWTService("test-secret", "15m", "-1h")
		expired, _, err := jwtService.GenerateRefreshToken(userID)
		require.NoError(t, err)

		_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: expired})
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		login, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "asha", Password: "s3cret-pass"})
		require.NoError(t, err)

		require.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken))

		_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})

	t.Run("token never stored counts as revoked", func(t *testing.T) {
		f := newFixture(t)
		userID := f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		// valid signature but the server has no record of it
		jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
		stray, _, err := jwtService.GenerateRefreshToken(userID)
		require.NoError(t, err)

		_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: stray})
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}

func TestLogout(t *testing.T) {
	f := newFixture(t)

	// missing cookie is not an error
	assert.NoError(t, f.svc.Logout(context.Background(), ""))
}

func TestLoginWithGoogle(t *testing.T) {
	t.Run("links the account on first login", func(t *testing.T) {
		f := newFixture(t)
		userID := f.seedUser(t, "asha", "asha@example.com", "s3cret-pass")

		resp, err := f.svc.LoginWithGoogle(context.Background(), "asha@example.com", "google-uid-1")
		require.NoError(t, err)
		assert.Equal(t, "asha", resp.User.Username)

		linked, err := f.users.GetByID(context.Background(), userID)
		require.NoError(t, err)
		require.NotNil(t, linked.OAuthProviderID)
		assert.Equal(t, "google-uid-1", *linked.OAuthProviderID)
	})

	t.Run("unknown email is refused", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LoginWithGoogle(context.Background(), "stranger@example.com", "google-uid-2")
		assert.ErrorIs(t, err, auth.ErrOAuthUserUnknown)
	})
}
