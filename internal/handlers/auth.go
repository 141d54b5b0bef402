package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/benvon/identity-gateway/internal/auth"
	"github.com/benvon/identity-gateway/internal/identity"
	"github.com/benvon/identity-gateway/internal/outcome"
	"github.com/benvon/identity-gateway/internal/request"
	"github.com/benvon/identity-gateway/internal/token"
	"go.uber.org/zap"
)

var validate = validator.New()

// AuthHandler dispatches every gateway endpoint: it decides which requests
// pass through the guard, forwards the extracted payload fields to the
// identity provider, and wires the result through the outcome normalizer —
// minting a fresh session token on the issuance paths.
type AuthHandler struct {
	provider identity.Provider
	codec    *token.Codec
	guard    *auth.Guard
	logger   *zap.Logger
}

// NewAuthHandler creates the gateway's endpoint handler.
func NewAuthHandler(provider identity.Provider, codec *token.Codec, guard *auth.Guard, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, codec: codec, guard: guard, logger: logger}
}

// RegisterRoutes registers all endpoints. requireAuth wraps the endpoints
// that demand an authenticated caller; the login endpoint runs the guard
// itself in soft mode and stays public.
func (h *AuthHandler) RegisterRoutes(r *mux.Router, requireAuth mux.MiddlewareFunc) {
	r.HandleFunc("/user", h.CreateAccount).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/forgot", h.ForgotPassword).Methods("POST")

	r.Handle("/me", requireAuth(http.HandlerFunc(h.GetMe))).Methods("GET")
	r.Handle("/credentials", requireAuth(http.HandlerFunc(h.GetCredentials))).Methods("GET")
	r.Handle("/user", requireAuth(http.HandlerFunc(h.UpdatePassword))).Methods("PUT")
	r.Handle("/logout", requireAuth(http.HandlerFunc(h.Logout))).Methods("POST")
}

// CreateAccountRequest represents a signup request
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a password or federated login request. The
// federated fields are required exactly when a provider is named; the
// provider always comes from the request body itself.
type LoginRequest struct {
	Email        string `json:"email" validate:"required_without=Provider,omitempty,email"`
	Password     string `json:"password" validate:"required_without=Provider"`
	RefreshToken string `json:"refreshtoken"`
	Provider     string `json:"provider"`
	Code         string `json:"code" validate:"required_with=Provider"`
	ClientID     string `json:"clientId" validate:"required_with=Provider"`
	RedirectURI  string `json:"redirectUri" validate:"required_with=Provider"`
}

// ForgotPasswordRequest represents a password-reset initiation request
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest represents a password change request
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// LogoutRequest represents a provider unlink request
type LogoutRequest struct {
	Provider string `json:"provider" validate:"required"`
}

// CreateAccount handles POST /user: provider signup, then token issuance for
// the new subject under the policy default.
func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	data, err := h.provider.Signup(r.Context(), req.Name, req.Email, req.Password)
	h.respondWithToken(w, data, err)
}

// Login handles POST /login. Without a provider in the body it is a password
// login. With one, the guard runs in soft mode against the request's own
// Authorization header: a recovered subject means the federated identity is
// linked to that existing account, no identity means a fresh signup. A
// missing or expired credential is fine there; a forged one still fails.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if req.Provider == "" {
		data, err := h.provider.Login(r.Context(), req.Email, req.Password, req.RefreshToken)
		h.respondWithToken(w, data, err)
		return
	}

	subject, err := h.guard.Authenticate(r.Header.Get("Authorization"), true)
	if err != nil {
		h.respondGuardFailure(w, err)
		return
	}

	data, err := h.provider.LoginFederated(r.Context(), req.Provider, req.Code, req.ClientID, req.RedirectURI, subject)
	h.respondWithToken(w, data, err)
}

// GetMe handles GET /me: profile lookup for the authenticated subject.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetProfile(r.Context(), request.SubjectFromContext(r))
	writeOutcome(w, outcome.Normalize(err, data))
}

// GetCredentials handles GET /credentials.
func (h *AuthHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetCredentials(r.Context(), request.SubjectFromContext(r))
	writeOutcome(w, outcome.Normalize(err, data))
}

// ForgotPassword handles POST /forgot.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	data, err := h.provider.ForgotPassword(r.Context(), req.Email)
	writeOutcome(w, outcome.Normalize(err, data))
}

// UpdatePassword handles PUT /user.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	data, err := h.provider.UpdatePassword(r.Context(), request.SubjectFromContext(r), req.Password)
	writeOutcome(w, outcome.Normalize(err, data))
}

// Logout handles POST /logout: unlink a login provider from the
// authenticated subject's account.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	data, err := h.provider.Unlink(r.Context(), request.SubjectFromContext(r), req.Provider)
	writeOutcome(w, outcome.Normalize(err, data))
}

// decodeAndValidate parses and validates the request body, responding with a
// Bad Request failure itself when the payload is unusable.
func (h *AuthHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "Invalid JSON payload")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeBadRequest(w, err.Error())
		return false
	}
	return true
}

// respondWithToken finishes an issuance endpoint: on provider success a
// fresh session token is minted for the returned subject id and the response
// is {token}; failures go through the normalizer unchanged.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, data map[string]any, err error) {
	if err != nil {
		writeOutcome(w, outcome.Normalize(err, nil))
		return
	}

	subject, _ := data["id"].(string)
	if subject == "" {
		h.logger.Error("provider_response_missing_user_id")
		writeBadRequest(w, "Provider response missing user id")
		return
	}

	tok, encErr := h.codec.Encode(subject, 0)
	if encErr != nil {
		h.logger.Error("failed_to_mint_session_token", zap.Error(encErr))
		writeBadRequest(w, "Failed to issue session token")
		return
	}

	writeOutcome(w, outcome.Success(map[string]any{"token": tok}))
}

// respondGuardFailure surfaces a soft-mode decode failure. Only invalid
// tokens reach here: soft mode never errors on a missing header.
func (h *AuthHandler) respondGuardFailure(w http.ResponseWriter, err error) {
	if ge, ok := auth.IsGuardError(err); ok {
		writeOutcome(w, outcome.Failure(ge.Status, "Unauthorized", ge.Message))
		return
	}
	writeOutcome(w, outcome.Failure(http.StatusUnauthorized, "Unauthorized", err.Error()))
}
