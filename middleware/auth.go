package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/utils"
	"go.uber.org/zap"
)

type ContextKey string

const (
	IdentityKey  ContextKey = "identity"
	RequestIDKey ContextKey = "requestId"

	AccessTokenCookie = "accessToken"
)

// TokenVerifier is satisfied by *utils.TokenService.
type TokenVerifier interface {
	Verify(token string) *utils.Identity
}

// Authenticate attaches the caller's identity to the request context when a
// valid token is present. The cookie is tried first and a Bearer header second,
// so a stale cookie does not hide a valid header. It never rejects a request;
// RequireAuth does that.
func Authenticate(tokens TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidates := TokensFromRequest(r)
			for _, token := range candidates {
				if identity := tokens.Verify(token); identity != nil {
					ctx := context.WithValue(r.Context(), IdentityKey, identity)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if len(candidates) > 0 {
				logger.Debug("rejected access token",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth answers 401 unless Authenticate found a valid identity. Missing,
// malformed, expired and forged tokens all get the same response.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFrom(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.APIResponse{
				Success: false,
				Message: "User not authenticated.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func IdentityFrom(ctx context.Context) *utils.Identity {
	identity, _ := ctx.Value(IdentityKey).(*utils.Identity)
	return identity
}

// TokensFromRequest returns the access token cookie and the Bearer
// Authorization token, in that order, skipping whichever is absent.
func TokensFromRequest(r *http.Request) []string {
	var tokens []string
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		tokens = append(tokens, c.Value)
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
