package serve

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/server"
	"github.com/agentstation/spotmap/pkg/errors"
)

// syncBuffer guards a buffer shared with the server goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestParseConfig(t *testing.T) {
	defaults := server.DefaultConfig()
	defaults.Port = 9000

	var got server.Config
	cmd := NewCommand(&application.Mock{}, func() server.Config { return defaults })
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		got = parseConfig(cmd, defaults)
		return nil
	}
	cmd.SetArgs([]string{"--host", "0.0.0.0", "--cors-origins", "https://example.com", "--rate-limit", "0"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 9000, got.Port, "unset flags keep the configured value")
	assert.Equal(t, "0.0.0.0", got.Host)
	assert.True(t, got.CORSEnabled)
	assert.Equal(t, []string{"https://example.com"}, got.CORSOrigins)
	assert.Zero(t, got.RateLimit)
	assert.Equal(t, defaults.CacheTTL, got.CacheTTL)
}

func TestRun_AuthWithoutKey(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.AuthEnabled = true

	err := run(context.Background(), &application.Mock{}, cfg, &bytes.Buffer{})
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, &application.Mock{}, server.DefaultConfig(), ln, out)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, out.String(), "listening on http://"+ln.Addr().String())
	assert.Contains(t, out.String(), "Shutting down")
}
