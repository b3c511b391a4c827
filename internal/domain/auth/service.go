package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// LoginWithGoogle signs in an existing account matched by its
	// verified Google email. Accounts are never auto-created here.
	LoginWithGoogle(ctx context.Context, googleEmail, googleID string) (TokenResponse, error)
}
