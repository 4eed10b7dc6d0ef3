// internal/auth/auth.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoPrincipal indicates a request that carries no resolvable user.
var ErrNoPrincipal = errors.New("no authenticated user")

// Authenticator resolves an incoming request to the id of the user it
// acts for. Credential storage, token issuance and OAuth live with the
// identity collaborator behind this interface; the core only ever sees
// a resolved user id.
type Authenticator interface {
	Authenticate(r *http.Request) (uuid.UUID, error)
}

// UserIDHeader is the header a fronting gateway uses to convey the
// authenticated principal.
const UserIDHeader = "X-User-ID"

// HeaderAuthenticator trusts the user id injected by an authenticating
// reverse proxy. It stands in for the identity collaborator in
// deployments where token verification happens at the edge.
type HeaderAuthenticator struct{}

// NewHeaderAuthenticator creates a new HeaderAuthenticator.
func NewHeaderAuthenticator() *HeaderAuthenticator {
	return &HeaderAuthenticator{}
}

// Authenticate resolves the principal from the gateway header.
func (a *HeaderAuthenticator) Authenticate(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return uuid.Nil, ErrNoPrincipal
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoPrincipal
	}
	return userID, nil
}

type contextKey struct{}

// Middleware authenticates every request and stores the principal in
// the request context. Requests without a principal are rejected with
// 401 before reaching any handler.
func Middleware(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := a.Authenticate(r)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status":"fail","message":"You must be logged in"}`))
				return
			}
			ctx := context.WithValue(r.Context(), contextKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by Middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return userID, ok
}
