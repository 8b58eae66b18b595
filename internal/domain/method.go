package domain

import (
	apperrors "github.com/shhac/scratch/internal/errors"
)

// Method is an HTTP request method a scratch pad can use.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
)

// methods is the closed set in display order.
var methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodOptions,
	MethodHead,
}

// Methods returns every supported method in display order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// MethodNames returns the display names of Methods, for select widgets.
func MethodNames() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}

// ParseMethod converts a display name back into a Method.
// Only the exact upper-case names are accepted.
func ParseMethod(s string) (Method, error) {
	for _, m := range methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", apperrors.ValidationError{Field: "method", Message: "unsupported method " + quote(s)}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	_, err := ParseMethod(string(m))
	return err == nil
}

func (m Method) String() string {
	return string(m)
}

func quote(s string) string {
	return `"` + s + `"`
}
