package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

// claimRoles reads the roles claim. jwtauth decodes JSON arrays as
// []interface{}.
func claimRoles(r *http.Request) []user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil
	}
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return user.ParseRoles(values)
}

func hasAnyRole(r *http.Request, wanted ...user.Role) bool {
	roles := claimRoles(r)
	for _, role := range roles {
		for _, w := range wanted {
			if role == w {
				return true
			}
		}
	}
	return false
}

// AdminOnly restricts a route to administrators.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasAnyRole(r, user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HROnly restricts a route to HR staff and administrators.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasAnyRole(r, user.RoleAdmin, user.RoleHR) {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ApproverOnly restricts a route to roles that may action leave
// requests. The service re-checks the approver identity.
func ApproverOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasAnyRole(r, user.RoleAdmin, user.RoleHR, user.RoleManager) {
			response.Forbidden(w, "Approver role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
