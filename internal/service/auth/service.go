package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	jwx "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	postgresql.RefreshTokenRepository
	inTx func(ctx context.Context, fn func(context.Context) error) error
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, tokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	inTx := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
	if db != nil {
		inTx = func(ctx context.Context, fn func(context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		}
	}
	return &AuthServiceImpl{
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: tokenRepository,
		inTx:                   inTx,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService. The username field also accepts
// the account email.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if errors.Is(err, user.ErrUserNotFound) && strings.Contains(req.Username, "@") {
		userData, err = a.UserRepository.GetByEmail(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// Register implements auth.AuthService. New accounts default to the
// EMPLOYEE role when none is given.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if _, err := a.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return auth.TokenResponse{}, user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	roles := user.ParseRoles(req.Roles)
	if len(roles) == 0 {
		roles = []user.Role{user.RoleEmployee}
	}

	newUser, err := a.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hash,
		Roles:        roles,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(ctx, newUser)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	userID, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwx.ErrTokenExpired()) {
			return auth.AccessTokenResponse{}, auth.ErrTokenExpired
		}
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.RefreshTokenRepository.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.EmployeeID, userData.RoleStrings())
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		TokenType:            "Bearer",
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail, googleID string) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOAuthUserUnknown
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.OAuthProviderID == nil {
		if err := a.UserRepository.LinkOAuthAccount(ctx, userData.ID, "google", googleID); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link oauth account: %w", err)
		}
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	err = a.inTx(ctx, func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			userData.ID, userData.Username, userData.EmployeeID, userData.RoleStrings())
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		expiresAt := time.Unix(tokenResponse.RefreshTokenExpiresIn, 0)
		if err := a.RefreshTokenRepository.Create(txCtx, userData.ID, tokenResponse.RefreshToken, expiresAt); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.TokenType = "Bearer"
	tokenResponse.User = user.ToSummary(userData)
	return tokenResponse, nil
}
