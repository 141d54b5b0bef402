package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/benvon/identity-gateway/internal/token"
)

// loadCodec builds a codec from TOKEN_SECRET and EXPIRES_IN. Only the token
// configuration is read here; the tool works without the rest of the
// server's environment.
func loadCodec() (*token.Codec, error) {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}

	var expiresIn int64
	if v := os.Getenv("EXPIRES_IN"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("EXPIRES_IN must be a positive number of seconds")
		}
		expiresIn = parsed
	}

	return token.NewCodec([]byte(secret), token.Policy{DefaultTTLSeconds: expiresIn}), nil
}
