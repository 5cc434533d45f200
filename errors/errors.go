// errors/errors.go
// Package errors defines the error taxonomy surfaced by the client. Construction problems are
// returned synchronously, everything that happens once a request is in flight is returned through
// the pending result. Transport failures from the injected HTTP client are never wrapped.
package errors

import (
	"github.com/cockroachdb/errors"
)

const (
	ErrCodeConfiguration   = "configuration_error"
	ErrCodeSigning         = "signing_error"
	ErrCodeRequestEncoding = "request_encoding_error"
)

var (
	// ErrConfiguration marks a missing or invalid construction-time setting. Fatal, not retryable.
	ErrConfiguration = newInternalError(ErrCodeConfiguration, "invalid client configuration")
	// ErrSigning marks a failure to compute the OAuth signature for a request.
	ErrSigning = newInternalError(ErrCodeSigning, "unable to sign request")
	// ErrRequestEncoding marks a failure to encode the request body or build the request.
	ErrRequestEncoding = newInternalError(ErrCodeRequestEncoding, "unable to encode request")
)

// InternalError is a sentinel carrying a machine-readable code.
type InternalError struct {
	Code    string
	Message string
}

func (e *InternalError) Error() string {
	return e.Code + ": " + e.Message
}

func newInternalError(code, message string) *InternalError {
	return &InternalError{Code: code, Message: message}
}

// IsConfiguration reports whether err was marked as a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsSigning reports whether err was marked as a signing error.
func IsSigning(err error) bool {
	return errors.Is(err, ErrSigning)
}

// IsRequestEncoding reports whether err was marked as a request encoding error.
func IsRequestEncoding(err error) bool {
	return errors.Is(err, ErrRequestEncoding)
}

// IsTransport reports whether err came from the HTTP collaborator rather than from this client.
func IsTransport(err error) bool {
	return err != nil && !IsConfiguration(err) && !IsSigning(err) && !IsRequestEncoding(err)
}
