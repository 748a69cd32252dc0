package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRequest covers framing violations: no blank-line
	// delimiter, a short request line, or a header line without a colon.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrMissingCredentials means the query string lacks the username or
	// password key (or a pair without '=').
	ErrMissingCredentials = errors.New("missing username and/or password in request url queries")

	// ErrFaviconProbe marks a browser /favicon.ico request. The server
	// drops the connection without a response.
	ErrFaviconProbe = errors.New("favicon probe")
)

// UnsupportedMethodError reports a request method outside {GET, POST}.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported request method: %s", e.Method)
}

// InvalidPathError reports a request path other than the registry resource.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid request path: %s", e.Path)
}
