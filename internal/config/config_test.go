package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("minimal valid configuration", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "s3cret")
		t.Setenv("PROVIDER_URL", "https://idp.example.com")
		t.Setenv("EXPIRES_IN", "")
		t.Setenv("SERVER_PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TokenSecret != "s3cret" {
			t.Errorf("TokenSecret = %q", cfg.TokenSecret)
		}
		if cfg.ExpiresIn != 0 {
			t.Errorf("ExpiresIn = %d, want 0 (unset)", cfg.ExpiresIn)
		}
		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %q, want default 8080", cfg.ServerPort)
		}
	})

	t.Run("token secret is required", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "")
		t.Setenv("PROVIDER_URL", "https://idp.example.com")

		if _, err := Load(); err == nil {
			t.Fatal("Load() succeeded without TOKEN_SECRET")
		}
	})

	t.Run("provider URL is required", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "s3cret")
		t.Setenv("PROVIDER_URL", "")

		if _, err := Load(); err == nil {
			t.Fatal("Load() succeeded without PROVIDER_URL")
		}
	})

	t.Run("expires in is parsed", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "s3cret")
		t.Setenv("PROVIDER_URL", "https://idp.example.com")
		t.Setenv("EXPIRES_IN", "3600")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.ExpiresIn != 3600 {
			t.Errorf("ExpiresIn = %d, want 3600", cfg.ExpiresIn)
		}
	})

	t.Run("negative expires in is rejected", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "s3cret")
		t.Setenv("PROVIDER_URL", "https://idp.example.com")
		t.Setenv("EXPIRES_IN", "-1")

		if _, err := Load(); err == nil {
			t.Fatal("Load() succeeded with negative EXPIRES_IN")
		}
	})
}
