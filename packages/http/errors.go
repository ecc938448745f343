package http

import (
	"fmt"
)

// Error kinds reported on the error stream and used to pick exit codes.
const (
	KindInvalidURL          = "InvalidUrl"
	KindInvalidKeyValuePair = "InvalidKeyValuePair"
	KindTransport           = "TransportError"
	KindUndecodableBody     = "UndecodableBody"
)

// InvalidURLError is returned when a request URL is malformed or not absolute.
type InvalidURLError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid URL %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid URL %q: %s", e.Input, e.Reason)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

func (e *InvalidURLError) Kind() string { return KindInvalidURL }

// InvalidKeyValuePairError is returned for a body token that is not key=value.
type InvalidKeyValuePairError struct {
	Input  string
	Reason string
}

func (e *InvalidKeyValuePairError) Error() string {
	return fmt.Sprintf("invalid key=value pair %q: %s", e.Input, e.Reason)
}

func (e *InvalidKeyValuePairError) Kind() string { return KindInvalidKeyValuePair }

// TransportError wraps a failure to complete the HTTP exchange.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Kind() string { return KindTransport }

// UndecodableBodyError is returned when a response body is not valid UTF-8.
type UndecodableBodyError struct {
	// Offset of the first invalid byte.
	Offset int
}

func (e *UndecodableBodyError) Error() string {
	return fmt.Sprintf("response body is not valid UTF-8 text (invalid byte at offset %d)", e.Offset)
}

func (e *UndecodableBodyError) Kind() string { return KindUndecodableBody }
