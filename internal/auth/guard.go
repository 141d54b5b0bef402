package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/benvon/identity-gateway/internal/token"
)

// ExpiryGraceSeconds is the tolerance applied when checking token expiry,
// absorbing clock skew between issuer and verifier plus request latency.
const ExpiryGraceSeconds = 60

// Error is a guard failure with a fixed HTTP status and message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrMissingCredential is returned when no Authorization header was sent.
	ErrMissingCredential = &Error{Status: http.StatusUnauthorized, Message: "Missing Authorization header"}
	// ErrInvalidToken is returned when the token is malformed or its
	// signature does not verify.
	ErrInvalidToken = &Error{Status: http.StatusUnauthorized, Message: "Invalid token"}
	// ErrExpiredToken is returned when the token is past its expiry plus
	// the grace window.
	ErrExpiredToken = &Error{Status: http.StatusUnauthorized, Message: "Token has expired"}
)

// Guard authenticates requests from their credential header. It is stateless
// apart from the codec's fixed secret and safe for concurrent use.
type Guard struct {
	codec *token.Codec
}

// NewGuard creates a guard verifying tokens with the given codec.
func NewGuard(codec *token.Codec) *Guard {
	return &Guard{codec: codec}
}

// Authenticate extracts the bearer token from an Authorization-style header
// value ("<scheme> <token>") and returns the authenticated subject.
//
// In soft mode a missing header or an expired token yields ("", nil) — no
// identity, not an error. A malformed or forged token fails in both modes:
// only absence is soft-tolerated, untrusted input never is.
func (g *Guard) Authenticate(headerValue string, soft bool) (string, error) {
	if headerValue == "" {
		if soft {
			return "", nil
		}
		return "", ErrMissingCredential
	}

	// Token is the part after the first space; a schemeless value decodes
	// as garbage and fails below.
	_, raw, found := strings.Cut(headerValue, " ")
	if !found {
		raw = ""
	}

	claims, err := g.codec.Decode(raw)
	if err != nil {
		return "", ErrInvalidToken
	}

	now := time.Now().Unix()
	if claims.ExpiresAt <= now-ExpiryGraceSeconds {
		if soft {
			return "", nil
		}
		return "", ErrExpiredToken
	}

	return claims.Subject, nil
}

// IsGuardError reports whether err is a guard failure and returns it typed.
func IsGuardError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
