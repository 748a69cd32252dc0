package wire

import "fmt"

// Response is one outbound message. After writing it the server half-closes
// the connection, so no framing headers (Content-Length, keep-alive) are
// needed: the response ends when the stream does.
type Response struct {
	Status      int
	Reason      string
	ContentType string
	Body        string
}

// Encode serializes the response: status line, content type, blank line,
// body.
func (r *Response) Encode() []byte {
	return fmt.Appendf(nil, "HTTP/1.1 %d %s\r\nContent-type: %s\r\n\r\n%s",
		r.Status, r.Reason, r.ContentType, r.Body)
}
