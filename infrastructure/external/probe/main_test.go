package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPProber(t *testing.T) {
	t.Run("any status counts as reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		host, port, err := net.SplitHostPort(server.Listener.Addr().String())
		assert.NoError(t, err)

		err = NewHTTPProber().Probe(context.Background(), host, port)

		assert.NoError(t, err)
	})

	t.Run("closed port is reported", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		host, port, err := net.SplitHostPort(listener.Addr().String())
		assert.NoError(t, err)
		listener.Close()

		err = NewHTTPProber().Probe(context.Background(), host, port)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "is not reachable")
	})
}
