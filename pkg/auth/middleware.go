package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/veilbot/veilpay/pkg/utils"
)

type ContextKey string

const ServiceKey ContextKey = "service"

// Middleware guards the internal bot-to-service endpoints with a signed
// service token.
func (s *JWTService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := s.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ServiceKey, claims.Service)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
