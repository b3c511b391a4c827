package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
)

// userIDFromRequest reads the authenticated user's id from the verified
// token claims.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
