// Package wire implements the registry's request/response framing: an
// HTTP-like, CRLF-delimited text format carrying exactly one exchange per
// connection. Parsing knows nothing about business semantics; it only turns
// bytes into a structured Request and a Response back into bytes.
package wire

import (
	"sort"
	"strings"
)

// Protocol vocabulary. The registry exposes a single resource path and two
// methods; POST requests carry the entry kind in the entry_type header.
const (
	MethodGet  = "GET"
	MethodPost = "POST"

	ResourcePath = "/patient"
	faviconPath  = "/favicon.ico"

	HeaderEntryType = "entry_type"

	EntryPatient     = "patient"
	EntryPressure    = "pressure"
	EntryTemperature = "temperature"
)

// Request is the decoded form of one inbound message. Header keys are
// lower-cased; query values are kept raw (the protocol never escapes them).
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    string
}

// ParseRequest decodes a single accumulated request buffer. The whole
// message is assumed to be present; there is no streaming or chunking.
func ParseRequest(raw []byte) (*Request, error) {
	head, body, found := strings.Cut(string(raw), "\r\n\r\n")
	if !found {
		return nil, ErrMalformedRequest
	}

	lines := strings.Split(head, "\r\n")
	fields := strings.Split(lines[0], " ")
	if len(fields) < 2 {
		return nil, ErrMalformedRequest
	}

	method := fields[0]
	if method != MethodGet && method != MethodPost {
		return nil, &UnsupportedMethodError{Method: method}
	}

	path, rawQuery, _ := strings.Cut(fields[1], "?")
	if path == faviconPath {
		return nil, ErrFaviconProbe
	}
	if path != ResourcePath {
		return nil, &InvalidPathError{Path: path}
	}

	query := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, ErrMissingCredentials
		}
		query[name] = value
	}
	if _, ok := query["username"]; !ok {
		return nil, ErrMissingCredentials
	}
	if _, ok := query["password"]; !ok {
		return nil, ErrMissingCredentials
	}

	headers := make(map[string]string)
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, ErrMalformedRequest
		}
		headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}

	return &Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Headers: headers,
		Body:    body,
	}, nil
}

// Encode serializes the request in wire format. Query and header keys are
// emitted in sorted order so the output is deterministic.
func (r *Request) Encode() []byte {
	var b strings.Builder

	target := r.Path
	if len(r.Query) > 0 {
		names := make([]string, 0, len(r.Query))
		for name := range r.Query {
			names = append(names, name)
		}
		sort.Strings(names)
		pairs := make([]string, 0, len(names))
		for _, name := range names {
			pairs = append(pairs, name+"="+r.Query[name])
		}
		target += "?" + strings.Join(pairs, "&")
	}

	b.WriteString(r.Method + " " + target + " HTTP/1.1\r\n")

	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(name + ": " + r.Headers[name] + "\r\n")
	}

	b.WriteString("\r\n")
	b.WriteString(r.Body)

	return []byte(b.String())
}
