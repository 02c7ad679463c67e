package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth"
)

// Identity is the caller identity attached to authorized admin requests
type Identity struct {
	Subject string
	Role    string
}

// Authorizer decides whether a request may reach the admin API. The
// policy is injected into the router; handlers never branch on
// environment names.
type Authorizer interface {
	Authorize(r *http.Request) (*Identity, error)
}

var (
	// ErrNoAdminRole indicates a valid token without the admin role claim
	ErrNoAdminRole = errors.New("admin role required")

	// ErrMissingSubject indicates a valid token without a subject claim
	ErrMissingSubject = errors.New("subject claim required")
)

// JWTAuthorizer verifies HS256 bearer tokens and requires an admin
// role claim. This is the production policy.
type JWTAuthorizer struct {
	auth *jwtauth.JWTAuth
}

// NewJWTAuthorizer creates a JWT-based authorizer from a signing secret
func NewJWTAuthorizer(secret []byte) *JWTAuthorizer {
	return &JWTAuthorizer{auth: jwtauth.New("HS256", secret, nil)}
}

// TokenAuth exposes the underlying verifier, for issuing tokens in
// local tooling and tests.
func (a *JWTAuthorizer) TokenAuth() *jwtauth.JWTAuth {
	return a.auth
}

func (a *JWTAuthorizer) Authorize(r *http.Request) (*Identity, error) {
	token, err := jwtauth.VerifyRequest(a.auth, r, jwtauth.TokenFromHeader)
	if err != nil {
		return nil, err
	}

	role, _ := token.Get("role")
	roleStr, ok := role.(string)
	if !ok || roleStr != "admin" {
		return nil, ErrNoAdminRole
	}

	subject := token.Subject()
	if subject == "" {
		return nil, ErrMissingSubject
	}

	return &Identity{Subject: subject, Role: roleStr}, nil
}

// StaticAuthorizer grants every request a fixed administrative
// identity. It is selected only by explicit configuration (AUTH_MODE),
// for local development and tests.
type StaticAuthorizer struct {
	identity Identity
}

// NewStaticAuthorizer creates an authorizer with a fixed admin identity
func NewStaticAuthorizer(subject string) *StaticAuthorizer {
	if subject == "" {
		subject = "local-admin"
	}
	return &StaticAuthorizer{identity: Identity{Subject: subject, Role: "admin"}}
}

func (a *StaticAuthorizer) Authorize(r *http.Request) (*Identity, error) {
	identity := a.identity
	return &identity, nil
}

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the identity attached by RequireAdmin
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}

// RequireAdmin wraps admin routes with the injected authorization
// policy and attaches the caller identity to the request context.
func RequireAdmin(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authorizer.Authorize(r)
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, CodeUnauthorized, "authentication required", "")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
