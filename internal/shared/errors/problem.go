// Package errors provides the structured failures produced by request pipelines
// and their HTTP rendering.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Problem is a pipeline failure: the HTTP status to answer with and the
// message shown to the client.
type Problem struct {
	Status  int
	Message string
	// Cause is kept for logs and errors.Is; it is never rendered.
	Cause error
}

// Error implements the error interface.
func (p *Problem) Error() string {
	return p.Message
}

// Unwrap exposes the underlying cause.
func (p *Problem) Unwrap() error {
	return p.Cause
}

// WithCause returns a copy that wraps cause.
func (p *Problem) WithCause(cause error) *Problem {
	clone := *p
	clone.Cause = cause
	return &clone
}

// Kind names the taxonomy bucket of the problem, used as a metric attribute.
func (p *Problem) Kind() string {
	switch p.Status {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// InternalMessage is the generic message returned for unexpected failures.
const InternalMessage = "Something went wrong!"

// Validation reports a malformed, missing, or out-of-policy field.
func Validation(format string, args ...any) *Problem {
	return &Problem{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a path identifier or route that cannot be resolved.
func NotFound(format string, args ...any) *Problem {
	return &Problem{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed reports a known path requested with an unsupported method.
func MethodNotAllowed(method, path string) *Problem {
	return &Problem{
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("%s not allowed for %s", method, path),
	}
}

// Internal wraps an unexpected failure behind the generic message.
func Internal(cause error) *Problem {
	return &Problem{Status: http.StatusInternalServerError, Message: InternalMessage, Cause: cause}
}

// AsProblem extracts a Problem from err, converting anything else to Internal.
func AsProblem(err error) *Problem {
	if err == nil {
		return nil
	}
	var problem *Problem
	if errors.As(err, &problem) {
		return problem
	}
	return Internal(err)
}

// StatusFromError extracts the HTTP status carried by err.
func StatusFromError(err error) int {
	var problem *Problem
	if errors.As(err, &problem) {
		return problem.Status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether err is a Problem in the 4xx range.
func IsClientError(err error) bool {
	status := StatusFromError(err)
	return status >= 400 && status < 500
}
