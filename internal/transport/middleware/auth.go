package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/reinafiec-backend/internal/service/auth"
	"github.com/heartmarshall/reinafiec-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*auth.Identity, error)
}

// Auth validates a bearer token when present and stores the caller's
// identity on the context. Requests without a token pass through anonymous;
// per-operation checks decide what anonymous callers may do.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithVoterID(r.Context(), identity.VoterID)
			ctx = ctxutil.WithRole(ctx, identity.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
