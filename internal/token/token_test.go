package token

import (
	"strings"
	"testing"
)

func TestResolveTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		defaultTTL int64
		override   int64
		want       int64
	}{
		{
			name:       "configured default wins over override",
			defaultTTL: 3600,
			override:   7,
			want:       3600,
		},
		{
			name:       "configured default wins with no override",
			defaultTTL: 3600,
			override:   0,
			want:       3600,
		},
		{
			name:     "override applies without configured default",
			override: 7,
			want:     7,
		},
		{
			name: "fallback is 14 days",
			want: 14 * 24 * 60 * 60,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Policy{DefaultTTLSeconds: tt.defaultTTL}
			if got := p.ResolveTTL(tt.override); got != tt.want {
				t.Errorf("ResolveTTL(%d) = %d, want %d", tt.override, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	tests := []struct {
		name       string
		defaultTTL int64
		subject    string
		ttl        int64
	}{
		{name: "policy fallback", subject: "u1"},
		{name: "per-call override", subject: "u2", ttl: 7},
		{name: "configured default beats override", defaultTTL: 120, subject: "u3", ttl: 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			policy := Policy{DefaultTTLSeconds: tt.defaultTTL}
			codec := NewCodec(secret, policy)

			tok, err := codec.Encode(tt.subject, tt.ttl)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			claims, err := codec.Decode(tok)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if claims.Subject != tt.subject {
				t.Errorf("Subject = %q, want %q", claims.Subject, tt.subject)
			}
			if got, want := claims.ExpiresAt-claims.IssuedAt, policy.ResolveTTL(tt.ttl); got != want {
				t.Errorf("ExpiresAt-IssuedAt = %d, want %d", got, want)
			}
			if claims.ExpiresAt < claims.IssuedAt {
				t.Errorf("ExpiresAt %d before IssuedAt %d", claims.ExpiresAt, claims.IssuedAt)
			}
		})
	}
}

func TestDecodeRejectsUntrustedInput(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret"), Policy{})

	tok, err := codec.Encode("u1", 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not a token", input: "garbage"},
		{name: "truncated token", input: tok[:len(tok)-10]},
		{name: "tampered signature", input: tok[:len(tok)-4] + "AAAA"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := codec.Decode(tt.input); err == nil {
				t.Errorf("Decode(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestDecodeRejectsForeignKey(t *testing.T) {
	t.Parallel()

	minted, err := NewCodec([]byte("secret-a"), Policy{}).Encode("u1", 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if _, err := NewCodec([]byte("secret-b"), Policy{}).Decode(minted); err == nil {
		t.Error("Decode() accepted a token signed with a different key")
	}
}

func TestTokenIsTransmissible(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec([]byte("test-secret"), Policy{}).Encode("u1", 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.ContainsAny(tok, " \n\t") {
		t.Errorf("token contains whitespace: %q", tok)
	}
	if strings.Count(tok, ".") != 2 {
		t.Errorf("token has %d segment separators, want 2", strings.Count(tok, "."))
	}
}
