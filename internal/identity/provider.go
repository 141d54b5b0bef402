package identity

import (
	"context"
	"fmt"
)

// Provider is the identity-provider collaborator: the external system of
// record for accounts, credentials, and federated logins. Every operation
// takes plain values and completes with either provider-shaped success data
// (trusted verbatim, no schema validation) or an error — a *ProviderError
// when the provider itself rejected the call.
//
// Exactly one attempt is made per request; retries, if any, are the
// implementation's own business.
type Provider interface {
	// Signup registers a new account and returns the created user record.
	Signup(ctx context.Context, name, email, password string) (map[string]any, error)

	// Login performs a password login. refreshToken is optional.
	Login(ctx context.Context, email, password, refreshToken string) (map[string]any, error)

	// LoginFederated completes a federated OAuth login. subject, when
	// non-empty, is an already-authenticated user the new provider should
	// be linked to; when empty the provider performs a fresh signup.
	LoginFederated(ctx context.Context, provider, code, clientID, redirectURI, subject string) (map[string]any, error)

	// GetProfile returns the subject's profile.
	GetProfile(ctx context.Context, subject string) (map[string]any, error)

	// GetCredentials returns the subject's stored credentials.
	GetCredentials(ctx context.Context, subject string) (map[string]any, error)

	// ForgotPassword initiates a password reset for the given email.
	ForgotPassword(ctx context.Context, email string) (map[string]any, error)

	// UpdatePassword sets a new password for the subject.
	UpdatePassword(ctx context.Context, subject, password string) (map[string]any, error)

	// Unlink detaches a login provider from the subject's account.
	Unlink(ctx context.Context, subject, provider string) (map[string]any, error)
}

// ProviderError is a rejection from the identity provider, carrying its
// status code and error text.
type ProviderError struct {
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("provider error (status %d)", e.StatusCode)
}
