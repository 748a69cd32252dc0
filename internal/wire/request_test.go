package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_Get(t *testing.T) {
	raw := []byte("GET /patient?username=admin&password=admin HTTP/1.1\r\n\r\n")

	req, err := ParseRequest(raw)
	require.NoError(t, err)

	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, ResourcePath, req.Path)
	assert.Equal(t, "admin", req.Query["username"])
	assert.Equal(t, "admin", req.Query["password"])
	assert.Empty(t, req.Headers)
	assert.Empty(t, req.Body)
}

func TestParseRequest_PostWithHeaderAndBody(t *testing.T) {
	raw := []byte("POST /patient?username=jan&password=kowalski63 HTTP/1.1\r\n" +
		"entry_type: pressure\r\n" +
		"\r\n" +
		`{"systolic": "120.0", "diastolic": "80.2", "acquisition": "2021/12/12/22/10"}`)

	req, err := ParseRequest(raw)
	require.NoError(t, err)

	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, EntryPressure, req.Headers[HeaderEntryType])
	assert.Contains(t, req.Body, `"systolic"`)
}

func TestParseRequest_HeaderKeysNormalized(t *testing.T) {
	raw := []byte("POST /patient?username=a&password=b HTTP/1.1\r\n" +
		"Entry_Type :  temperature \r\n" +
		"\r\n{}")

	req, err := ParseRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "temperature", req.Headers["entry_type"])
}

func TestParseRequest_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"no delimiter", "GET /patient?username=a&password=b HTTP/1.1\r\n", ErrMalformedRequest},
		{"short request line", "GET\r\n\r\n", ErrMalformedRequest},
		{"header without colon", "GET /patient?username=a&password=b HTTP/1.1\r\nbogus\r\n\r\n", ErrMalformedRequest},
		{"favicon probe", "GET /favicon.ico HTTP/1.1\r\n\r\n", ErrFaviconProbe},
		{"missing username", "GET /patient?password=b HTTP/1.1\r\n\r\n", ErrMissingCredentials},
		{"missing password", "GET /patient?username=a HTTP/1.1\r\n\r\n", ErrMissingCredentials},
		{"empty query", "GET /patient HTTP/1.1\r\n\r\n", ErrMissingCredentials},
		{"pair without equals", "GET /patient?username HTTP/1.1\r\n\r\n", ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.raw))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRequest_UnsupportedMethod(t *testing.T) {
	_, err := ParseRequest([]byte("DELETE /patient?username=a&password=b HTTP/1.1\r\n\r\n"))

	var methodErr *UnsupportedMethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, "DELETE", methodErr.Method)
}

func TestParseRequest_InvalidPath(t *testing.T) {
	_, err := ParseRequest([]byte("GET /doctor?username=a&password=b HTTP/1.1\r\n\r\n"))

	var pathErr *InvalidPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/doctor", pathErr.Path)
}

func TestRequestEncode_RoundTrip(t *testing.T) {
	req := &Request{
		Method:  MethodPost,
		Path:    ResourcePath,
		Query:   map[string]string{"username": "anna", "password": "nowak81"},
		Headers: map[string]string{HeaderEntryType: EntryTemperature},
		Body:    `{"value": "36.6", "acquisition": "2020/12/31/23/59"}`,
	}

	parsed, err := ParseRequest(req.Encode())
	require.NoError(t, err)

	assert.Equal(t, req.Method, parsed.Method)
	assert.Equal(t, req.Query, parsed.Query)
	assert.Equal(t, req.Headers, parsed.Headers)
	assert.Equal(t, req.Body, parsed.Body)
}
