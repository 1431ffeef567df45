package session

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// Identity is the authenticated caller.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// Verifier checks a session cookie. *auth.Client satisfies it.
type Verifier interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// VerifierSource yields the verifier lazily so the admin client is built on first use.
type VerifierSource func(ctx context.Context) (Verifier, error)

// Provider resolves session tokens to identities.
type Provider struct {
	source       VerifierSource
	checkRevoked bool
	rejected     func(error) bool
	log          *zap.Logger
}

func NewProvider(source VerifierSource, checkRevoked bool, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		source:       source,
		checkRevoked: checkRevoked,
		rejected:     isRejected,
		log:          log.Named("session"),
	}
}

// Resolve returns the identity behind token. A missing, malformed, expired or revoked
// token yields ok=false with a nil error. err is returned when the verifier cannot
// reach a verdict, such as a failed public key fetch or user lookup.
func (p *Provider) Resolve(ctx context.Context, token string) (Identity, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, false, nil
	}

	verifier, err := p.source(ctx)
	if err != nil {
		return Identity{}, false, err
	}

	var claims *auth.Token
	if p.checkRevoked {
		claims, err = verifier.VerifySessionCookieAndCheckRevoked(ctx, token)
	} else {
		claims, err = verifier.VerifySessionCookie(ctx, token)
	}
	if err != nil {
		if p.rejected(err) {
			p.log.Debug("session rejected", zap.Error(err))
			return Identity{}, false, nil
		}
		return Identity{}, false, fmt.Errorf("verify session cookie: %w", err)
	}
	if claims == nil || strings.TrimSpace(claims.UID) == "" {
		return Identity{}, false, nil
	}

	identity := Identity{UID: claims.UID}
	if email, ok := claims.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, true, nil
}

// isRejected reports whether err is a verdict about the cookie or its user
// rather than a failure to verify it.
func isRejected(err error) bool {
	return auth.IsSessionCookieInvalid(err) ||
		auth.IsSessionCookieRevoked(err) ||
		auth.IsUserDisabled(err) ||
		auth.IsUserNotFound(err)
}
