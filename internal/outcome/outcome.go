package outcome

import (
	"errors"
	"net/http"

	"github.com/benvon/identity-gateway/internal/identity"
)

// Outcome is the uniform success/failure value every endpoint produces,
// independent of the identity provider's native result shape. The transport
// layer turns it into an HTTP response.
type Outcome struct {
	OK         bool
	HTTPStatus int
	// Label is the stable status class ("Not Found", "Conflict",
	// "Unauthorized", "Bad Request") on failures.
	Label   string
	Message string
	Data    any
}

// Success wraps provider data unchanged.
func Success(data any) Outcome {
	return Outcome{OK: true, HTTPStatus: http.StatusOK, Data: data}
}

// Failure builds a failed outcome with a stable label and message.
func Failure(status int, label, message string) Outcome {
	return Outcome{HTTPStatus: status, Label: label, Message: message}
}

// Normalize maps a provider call's result into an Outcome. Provider
// rejections get a label from a fixed status-code table; any code outside
// the table, or an error that is not a provider rejection at all, is a
// "Bad Request". Success data passes through verbatim.
func Normalize(err error, data any) Outcome {
	if err == nil {
		return Success(data)
	}

	status, label := http.StatusBadRequest, "Bad Request"
	var pe *identity.ProviderError
	if errors.As(err, &pe) {
		switch pe.StatusCode {
		case http.StatusNotFound:
			status, label = http.StatusNotFound, "Not Found"
		case http.StatusConflict:
			status, label = http.StatusConflict, "Conflict"
		case http.StatusUnauthorized:
			status, label = http.StatusUnauthorized, "Unauthorized"
		}
	}
	return Failure(status, label, err.Error())
}
