package client

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medregistry/internal/wire"
)

// startStubServer accepts one connection, records the received bytes and
// writes the canned reply.
func startStubServer(t *testing.T, reply string) (addr string, received <-chan string) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	ch := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		data, _ := io.ReadAll(conn)
		ch <- string(data)
		_, _ = conn.Write([]byte(reply))
	}()

	return listener.Addr().String(), ch
}

func TestDo_SendsRequestAndReadsResponse(t *testing.T) {
	addr, received := startStubServer(t, "HTTP/1.1 200 OK\r\nContent-type: text/plain\r\n\r\nok\r\n")

	c := New(addr)
	resp, err := c.Do(&wire.Request{
		Method: wire.MethodGet,
		Path:   wire.ResourcePath,
		Query:  map[string]string{"username": "admin", "password": "admin"},
	})
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-type: text/plain\r\n\r\nok\r\n", resp)
	assert.Equal(t, "GET /patient?password=admin&username=admin HTTP/1.1\r\n\r\n", <-received)
}

func TestDo_EmptyResponse(t *testing.T) {
	addr, _ := startStubServer(t, "")

	c := New(addr)
	resp, err := c.Do(&wire.Request{
		Method: wire.MethodGet,
		Path:   "/favicon.ico",
	})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestDo_ConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	c := New(addr)
	_, err = c.Do(&wire.Request{Method: wire.MethodGet, Path: wire.ResourcePath})
	assert.Error(t, err)
}
