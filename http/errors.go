package http

import "fmt"

// ErrorKind identifies which stage of the request pipeline failed.
type ErrorKind int

const (
	// ErrTransport covers network-level failures: the request never produced
	// a response.
	ErrTransport ErrorKind = iota

	// ErrStatus covers responses with a non-2xx status code. The Response
	// field carries the full response.
	ErrStatus

	// ErrDecode covers JSON decoding failures on an otherwise successful
	// response.
	ErrDecode
)

// RequestError is the single error type surfaced by verb methods. All three
// failure causes (transport, status, decode) collapse into it; callers that
// need structure can inspect Kind, the captured Response, or unwrap the
// underlying error.
type RequestError struct {
	Kind     ErrorKind
	Response *Response
	Err      error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	switch e.Kind {
	case ErrStatus:
		return fmt.Sprintf("request failed: %s", e.Response.Status)
	case ErrDecode:
		return fmt.Sprintf("request failed: decoding response body: %v", e.Err)
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

// Unwrap returns the underlying error, if any. Status errors have no
// underlying error; the Response field carries the failure.
func (e *RequestError) Unwrap() error {
	return e.Err
}
