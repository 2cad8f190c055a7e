package api

import "net/http"

// None is the payload type for endpoints whose envelope carries no object.
type None struct{}

// Result is the uniform response envelope returned by every backend endpoint.
// Single-entity operations populate Object, list operations populate Objects;
// both may be absent on error.
type Result[T any] struct {
	Correct      bool   `json:"correct"`
	Status       int    `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Object       *T     `json:"object,omitempty"`
	Objects      []T    `json:"objects,omitempty"`
}

// OK reports whether the envelope signals success. The backend is inconsistent
// about which of the two success signals it sets, so any of the boolean flag,
// status 200, or status 201 counts. Every call site uses this predicate.
func (r *Result[T]) OK() bool {
	return r.Correct || r.Status == http.StatusOK || r.Status == http.StatusCreated
}

// Message returns the envelope's error message, or fallback when it is empty.
func (r *Result[T]) Message(fallback string) string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	return fallback
}
