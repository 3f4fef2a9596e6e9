package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NotLoggedInDetail is the backend's detail string for an
// unauthenticated request. The literal is matched exactly; the UI
// turns it into a login redirect.
const NotLoggedInDetail = "Authenticatiegegevens zijn niet opgegeven."

// APIError is a non-2xx backend response: the HTTP status, the
// backend's human-readable detail, and any field-keyed validation
// messages from the body.
type APIError struct {
	StatusCode  int
	Detail      string
	FieldErrors map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// FieldError returns the first validation message for a form field,
// empty when the field has none.
func (e *APIError) FieldError(field string) string {
	if msgs := e.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// parseAPIError decodes an error body. The backend sends either
// {"detail": "..."} or a map of field names to message lists; both can
// appear in one body.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	for key, value := range raw {
		if key == "detail" {
			var detail string
			if err := json.Unmarshal(value, &detail); err == nil {
				apiErr.Detail = detail
			}
			continue
		}

		var msgs []string
		if err := json.Unmarshal(value, &msgs); err == nil && len(msgs) > 0 {
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = make(map[string][]string)
			}
			apiErr.FieldErrors[key] = msgs
		}
	}

	return apiErr
}

// AsAPIError unwraps err into an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotAuthenticated reports whether err is the backend's
// authentication-required error.
func IsNotAuthenticated(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Detail == NotLoggedInDetail
}

// LoginURL computes the login redirect that returns the user to
// currentPath after authenticating. The path is passed through as-is;
// the backend resolves the next target itself.
func LoginURL(currentPath string) string {
	return "/accounts/login/?next=/ui" + currentPath
}
