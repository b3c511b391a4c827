package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/oauth"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
	authService "github.com/hrms-suite/hrms-backend-go/internal/service/auth"
)

type authHandlerFixture struct {
	handler AuthHandler
	users   *memory.UserRepository
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()
	users := memory.NewUserRepository()
	tokens := memory.NewRefreshTokenRepository()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	authSvc := authService.NewAuthService(nil, users, jwtSvc, tokens)
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:8080/api/v1/auth/oauth/callback/google", []string{"email"})
	return &authHandlerFixture{
		handler: NewAuthHandler(jwtSvc, authSvc, googleSvc, "http://localhost:3000"),
		users:   users,
	}
}

func (f *authHandlerFixture) seedUser(t *testing.T, username, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	f.users.Seed(user.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Roles:        []user.Role{user.RoleEmployee},
	})
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	return req.WithContext(context.Background())
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", auth.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "SecurePass123",
	})
	w := httptest.NewRecorder()

	f.handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	cookie := refreshCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.seedUser(t, "asha", "asha@example.com", "SecurePass123")

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", auth.RegisterRequest{
		Username: "asha",
		Email:    "other@example.com",
		Password: "SecurePass123",
	})
	w := httptest.NewRecorder()

	f.handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	f.handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.seedUser(t, "asha", "asha@example.com", "password123")

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{
		Username: "asha",
		Password: "password123",
	})
	w := httptest.NewRecorder()

	f.handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])

	// the refresh token only travels in the cookie, never the body
	_, inBody := data["refresh_token"]
	assert.False(t, inBody)

	cookie := refreshCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.seedUser(t, "asha", "asha@example.com", "password123")

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{
		Username: "asha",
		Password: "wrongpassword",
	})
	w := httptest.NewRecorder()

	f.handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	f.handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LoginWithGoogle_Redirect(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login/oauth/google", nil)
	w := httptest.NewRecorder()

	f.handler.LoginWithGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var stateCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "state" {
			stateCookie = cookie
		}
	}
	require.NotNil(t, stateCookie)
	assert.NotEmpty(t, stateCookie.Value)
}

type stubGoogleService struct {
	profile oauth.GoogleProfile
}

func (s *stubGoogleService) GenerateState() (string, error) { return "state-1", nil }

func (s *stubGoogleService) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (s *stubGoogleService) Exchange(_ context.Context, _ string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "google-access-token"}, nil
}

func (s *stubGoogleService) FetchProfile(_ context.Context, _ *oauth2.Token) (oauth.GoogleProfile, error) {
	return s.profile, nil
}

func newCallbackFixture(t *testing.T, profile oauth.GoogleProfile) *authHandlerFixture {
	t.Helper()
	users := memory.NewUserRepository()
	tokens := memory.NewRefreshTokenRepository()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	authSvc := authService.NewAuthService(nil, users, jwtSvc, tokens)
	return &authHandlerFixture{
		handler: NewAuthHandler(jwtSvc, authSvc, &stubGoogleService{profile: profile}, "http://localhost:3000"),
		users:   users,
	}
}

func TestAuthHandler_OAuthCallbackGoogle_VerifiedEmail(t *testing.T) {
	f := newCallbackFixture(t, oauth.GoogleProfile{
		GoogleID:      "google-uid-1",
		Email:         "asha@example.com",
		VerifiedEmail: true,
	})
	f.seedUser(t, "asha", "asha@example.com", "password123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/oauth/callback/google?state=state-1&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "state", Value: "state-1"})
	w := httptest.NewRecorder()

	f.handler.OAuthCallbackGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "access_token=")
	assert.NotContains(t, location, "error=")
}

func TestAuthHandler_OAuthCallbackGoogle_UnverifiedEmail(t *testing.T) {
	f := newCallbackFixture(t, oauth.GoogleProfile{
		GoogleID:      "google-uid-1",
		Email:         "asha@example.com",
		VerifiedEmail: false,
	})
	f.seedUser(t, "asha", "asha@example.com", "password123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/oauth/callback/google?state=state-1&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "state", Value: "state-1"})
	w := httptest.NewRecorder()

	f.handler.OAuthCallbackGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=email_unverified")
}

func TestAuthHandler_OAuthCallbackGoogle_StateMismatch(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/oauth/callback/google?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "state", Value: "expected"})
	w := httptest.NewRecorder()

	f.handler.OAuthCallbackGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "http://localhost:3000/auth/callback/google?error="))
	assert.Contains(t, location, "state_mismatch")
}

func TestAuthHandler_RefreshToken_FromCookie(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.seedUser(t, "asha", "asha@example.com", "password123")

	loginReq := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{
		Username: "asha",
		Password: "password123",
	})
	loginW := httptest.NewRecorder()
	f.handler.Login(loginW, loginReq)
	cookie := refreshCookie(loginW)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: cookie.Value})
	w := httptest.NewRecorder()

	f.handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
}

func TestAuthHandler_RefreshToken_InvalidToken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/refresh", auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	w := httptest.NewRecorder()

	f.handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_RefreshToken_InvalidJSON(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	f.handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.seedUser(t, "asha", "asha@example.com", "password123")

	loginReq := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{
		Username: "asha",
		Password: "password123",
	})
	loginW := httptest.NewRecorder()
	f.handler.Login(loginW, loginReq)
	cookie := refreshCookie(loginW)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: cookie.Value})
	w := httptest.NewRecorder()

	f.handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))

	cleared := refreshCookie(w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestAuthHandler_Logout_NoCookie(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()

	f.handler.Logout(w, req)

	// nothing to revoke is still a clean logout
	assert.Equal(t, http.StatusOK, w.Code)
}
