package gateway

import (
	"context"
	"time"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoCredential      = errs.New("no credential attached to request")
	ErrCredentialExpired = errs.New("credential expired")
)

// CredentialProvider yields the bearer credential attached to every
// upstream call. The core never reads token storage directly; callers
// decide where the credential comes from.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

type tokenKey struct{}

// WithToken stores the caller's bearer token on the context so it can be
// forwarded upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// ContextCredentials forwards whatever bearer token the current request
// carried. Before handing the token out it checks the JWT expiry claim
// locally, so an expired credential surfaces as Unauthorized without a
// wasted round trip. The signature is not verified here; only the
// upstream holds the secret.
type ContextCredentials struct {
	clock clock.Clock
}

func NewContextCredentials(clk clock.Clock) *ContextCredentials {
	return &ContextCredentials{clock: clk}
}

func (c *ContextCredentials) Token(ctx context.Context) (string, error) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || token == "" {
		return "", ErrNoCredential
	}

	if exp, ok := tokenExpiry(token); ok && !exp.After(c.clock.Now()) {
		return "", ErrCredentialExpired
	}

	return token, nil
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) credentials pass through; the upstream decides.
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// StaticCredentials carries a fixed token, used by tests and by batch
// callers that hold a service credential.
type StaticCredentials struct {
	token string
}

func NewStaticCredentials(token string) *StaticCredentials {
	return &StaticCredentials{token: token}
}

func (s *StaticCredentials) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", ErrNoCredential
	}
	return s.token, nil
}
