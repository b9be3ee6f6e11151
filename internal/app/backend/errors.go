package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// APIError is a non-2xx answer from the backend. Detail carries the DRF
// "detail" message; Fields carries per-field validation messages.
type APIError struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *APIError) Error() string {
	msg := e.Message()
	return fmt.Sprintf("backend returned %d: %s", e.Status, msg)
}

func (e *APIError) StatusCode() int { return e.Status }

// Message is the best single user-facing sentence for the error.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if msgs := e.Fields["non_field_errors"]; len(msgs) > 0 {
		return msgs[0]
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(e.Fields[k]) > 0 {
			return e.Fields[k][0]
		}
	}
	if text := http.StatusText(e.Status); text != "" {
		return text
	}
	return "unexpected backend response"
}

// Field returns the first message for a form field.
func (e *APIError) Field(name string) string {
	if msgs := e.Fields[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Fields: map[string][]string{}}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Detail = strings.TrimSpace(string(raw))
		if len(apiErr.Detail) > 200 || strings.HasPrefix(apiErr.Detail, "<") {
			apiErr.Detail = ""
		}
		return apiErr
	}

	for key, value := range body {
		if key == "detail" {
			var detail string
			if json.Unmarshal(value, &detail) == nil {
				apiErr.Detail = detail
			}
			continue
		}
		var list []string
		if json.Unmarshal(value, &list) == nil {
			apiErr.Fields[key] = list
			continue
		}
		var single string
		if json.Unmarshal(value, &single) == nil {
			apiErr.Fields[key] = []string{single}
		}
	}
	return apiErr
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the credentials or token.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}
