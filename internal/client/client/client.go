// Package client implements the network side of the CLI: it sends one
// encoded request to the registry server and collects the full response.
package client

import (
	"fmt"
	"io"
	"net"
	"time"

	"github.com/dmitrijs2005/medregistry/internal/wire"
)

const dialTimeout = 5 * time.Second

// Client talks to a registry server. The protocol is one exchange per
// connection, so every Do call dials a fresh connection.
type Client struct {
	addr string
}

func New(addr string) *Client {
	return &Client{addr: addr}
}

// Do sends the request and returns the raw response bytes. The server side
// closes the connection after writing, so the response is read to EOF. An
// empty response is not an error; the server drops some probes silently.
func (c *Client) Do(req *wire.Request) (string, error) {
	conn, err := net.DialTimeout("tcp", c.addr, dialTimeout)
	if err != nil {
		return "", fmt.Errorf("cannot connect to %s: %w", c.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(req.Encode()); err != nil {
		return "", fmt.Errorf("cannot send request: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("cannot read response: %w", err)
	}
	return string(data), nil
}
