package api

import "errors"

// Sentinel errors classifying remote failures. Callers match them with
// errors.Is; the user-facing message travels in *Error.
var (
	// ErrInvalidCredentials: the backend rejected an email/password pair.
	// Recoverable, the user can correct the input.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated: no credential, or the backend rejected the bearer
	// token. Triggers a forced logout upstream.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNetwork: transport-level failure, no response received (status 0).
	// Retryable by user action, never automatically.
	ErrNetwork = errors.New("network failure")

	// ErrServer: a non-2xx response with no better classification, or a
	// malformed payload.
	ErrServer = errors.New("server failure")
)

// Error is a classified remote failure. Status is the HTTP status code,
// 0 for transport failures. Message is the human-readable text from the
// response payload, surfaced to the UI unmodified.
type Error struct {
	Status  int
	Message string
	Kind    error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// reclassify rewrites the kind of an *Error while keeping status and
// message. Non-*Error values pass through untouched.
func reclassify(err error, from, to error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) && errors.Is(apiErr.Kind, from) {
		return &Error{Status: apiErr.Status, Message: apiErr.Message, Kind: to}
	}
	return err
}
