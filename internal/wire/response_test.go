package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseEncode(t *testing.T) {
	resp := &Response{
		Status:      400,
		Reason:      "Bad Request",
		ContentType: "text/plain",
		Body:        "Bad request url path\r\n",
	}

	want := "HTTP/1.1 400 Bad Request\r\nContent-type: text/plain\r\n\r\nBad request url path\r\n"
	assert.Equal(t, want, string(resp.Encode()))
}

func TestResponseEncode_EmptyBody(t *testing.T) {
	resp := &Response{Status: 200, Reason: "OK", ContentType: "application/json"}

	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-type: application/json\r\n\r\n", string(resp.Encode()))
}
