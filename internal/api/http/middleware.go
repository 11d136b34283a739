package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Actor is the authenticated identity acting on an approval endpoint.
type Actor struct {
	ID    string
	Name  string
	Role  string
	Email string
}

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handler validates the Bearer token and stores the actor in the request
// context. It does not do any authorization beyond identity resolution.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		actor := &Actor{
			ID:    claims.UserID,
			Name:  claims.Name,
			Role:  claims.Role,
			Email: claims.Email,
		}
		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the actor placed by the auth middleware.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	return actor, ok
}

// RequestMetaFrom extracts the request metadata recorded on audit entries.
func RequestMetaFrom(r *http.Request) domain.RequestMeta {
	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		// First hop is the client
		if idx := strings.Index(ip, ","); idx != -1 {
			ip = ip[:idx]
		}
		ip = strings.TrimSpace(ip)
	} else {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip = host
	}
	return domain.RequestMeta{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
