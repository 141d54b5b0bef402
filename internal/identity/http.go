package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPProvider talks to the identity provider over JSON/HTTP. One instance
// is shared across requests; the embedded http.Client handles its own
// connection pooling and timeout.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider client for the given base URL.
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *HTTPProvider) Signup(ctx context.Context, name, email, password string) (map[string]any, error) {
	return p.do(ctx, http.MethodPost, "/signup", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

func (p *HTTPProvider) Login(ctx context.Context, email, password, refreshToken string) (map[string]any, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if refreshToken != "" {
		body["refreshToken"] = refreshToken
	}
	return p.do(ctx, http.MethodPost, "/login", body)
}

func (p *HTTPProvider) LoginFederated(ctx context.Context, provider, code, clientID, redirectURI, subject string) (map[string]any, error) {
	body := map[string]any{
		"provider":    provider,
		"code":        code,
		"clientId":    clientID,
		"redirectUri": redirectURI,
	}
	if subject != "" {
		body["userId"] = subject
	}
	return p.do(ctx, http.MethodPost, "/login/federated", body)
}

func (p *HTTPProvider) GetProfile(ctx context.Context, subject string) (map[string]any, error) {
	return p.do(ctx, http.MethodGet, "/users/"+url.PathEscape(subject)+"/profile", nil)
}

func (p *HTTPProvider) GetCredentials(ctx context.Context, subject string) (map[string]any, error) {
	return p.do(ctx, http.MethodGet, "/users/"+url.PathEscape(subject)+"/credentials", nil)
}

func (p *HTTPProvider) ForgotPassword(ctx context.Context, email string) (map[string]any, error) {
	return p.do(ctx, http.MethodPost, "/forgot", map[string]any{"email": email})
}

func (p *HTTPProvider) UpdatePassword(ctx context.Context, subject, password string) (map[string]any, error) {
	return p.do(ctx, http.MethodPut, "/users/"+url.PathEscape(subject)+"/password", map[string]any{
		"password": password,
	})
}

func (p *HTTPProvider) Unlink(ctx context.Context, subject, provider string) (map[string]any, error) {
	return p.do(ctx, http.MethodPost, "/users/"+url.PathEscape(subject)+"/unlink", map[string]any{
		"provider": provider,
	})
}

// do issues one request and maps the outcome: 2xx with a JSON body becomes
// the success data, anything else becomes a *ProviderError carrying the
// provider's status code and error text.
func (p *HTTPProvider) do(ctx context.Context, method, path string, body map[string]any) (map[string]any, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(raw),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return data, nil
}

// errorDetail pulls the provider's own error text out of a failure body,
// falling back to the raw body.
func errorDetail(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
