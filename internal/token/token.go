package token

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// FallbackTTLSeconds is the session lifetime used when neither a global
// default nor a per-call override is configured (14 days).
const FallbackTTLSeconds = 14 * 24 * 60 * 60

// Claims is the decoded content of a session token.
type Claims struct {
	Subject   string
	IssuedAt  int64
	ExpiresAt int64
}

// Policy resolves the effective session lifetime for a newly minted token.
//
// A configured DefaultTTLSeconds is an administrator-fixed session lifetime:
// it wins over every per-call override, making overrides dead code while it
// is set. That is intentional and covered by tests.
type Policy struct {
	// DefaultTTLSeconds is the process-wide session lifetime in seconds.
	// Zero means not configured.
	DefaultTTLSeconds int64
}

// ResolveTTL returns the effective TTL in seconds. Precedence: configured
// default, then the per-call override (zero means none), then the 14-day
// fallback.
func (p Policy) ResolveTTL(overrideSeconds int64) int64 {
	if p.DefaultTTLSeconds > 0 {
		return p.DefaultTTLSeconds
	}
	if overrideSeconds > 0 {
		return overrideSeconds
	}
	return FallbackTTLSeconds
}

// Codec mints and verifies HS256-signed session tokens. The signing secret
// and policy are fixed at construction and never mutated, so a single Codec
// is safe for concurrent use.
type Codec struct {
	secret []byte
	policy Policy
}

// NewCodec creates a codec signing with the given secret under the given
// policy.
func NewCodec(secret []byte, policy Policy) *Codec {
	return &Codec{secret: secret, policy: policy}
}

// Policy returns the session policy the codec mints under.
func (c *Codec) Policy() Policy {
	return c.policy
}

// Encode mints a signed session token for subject. ttlSeconds overrides the
// policy default for this call only (zero means no override); the effective
// lifetime follows Policy.ResolveTTL.
func (c *Codec) Encode(subject string, ttlSeconds int64) (string, error) {
	now := time.Now().Truncate(time.Second)
	exp := now.Add(time.Duration(c.policy.ResolveTTL(ttlSeconds)) * time.Second)

	tok, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(now).
		Expiration(exp).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build claims: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, c.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), nil
}

// Decode verifies the token's signature and returns its claims. Expiry is
// deliberately not checked here: the guard enforces it with a grace window,
// and soft-mode callers treat an expired token differently from a forged one.
// Structural and signature failures are reported as one undifferentiated
// error; corrupt and forged tokens are equally untrusted input.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	tok, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, c.secret),
		jwt.WithValidate(false),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to parse/verify token: %w", err)
	}

	return Claims{
		Subject:   tok.Subject(),
		IssuedAt:  tok.IssuedAt().Unix(),
		ExpiresAt: tok.Expiration().Unix(),
	}, nil
}
