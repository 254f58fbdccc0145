package middleware

import (
	"net/http"

	"healthcare-portal/internal/domain/entity"
	"healthcare-portal/pkg/response"
)

// RequireRole creates a middleware that checks if the session user has any of the given user types
func RequireRole(allowed ...entity.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User information not found")
				return
			}

			for _, userType := range allowed {
				if user.UserType == userType {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.UserTypeDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.UserTypePatient)(next)
}
