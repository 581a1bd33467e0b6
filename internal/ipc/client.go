package ipc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"searchmenu/internal/logging"
)

const defaultConnectTimeout = 2 * time.Second

// Options tunes a Client. Zero values select defaults.
type Options struct {
	ConnectTimeout time.Duration
	// LockFile serializes sends across processes; empty disables it.
	LockFile    string
	LockTimeout time.Duration
	Logger      *slog.Logger
}

// Client writes commands to one player endpoint.
type Client struct {
	endpoint Endpoint
	opts     Options
	logger   *slog.Logger
}

// NewClient returns a client for endpoint.
func NewClient(endpoint Endpoint, opts Options) *Client {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = defaultConnectTimeout
	}
	logger := logging.NewComponentLogger(opts.Logger, "ipc").With(
		logging.String(logging.FieldEndpoint, endpoint.String()),
	)
	return &Client{endpoint: endpoint, opts: opts, logger: logger}
}

// Endpoint reports where the client sends commands.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Send opens the endpoint, writes command as UTF-8, and closes the
// connection. The command must already carry its newline terminator.
func (c *Client) Send(ctx context.Context, command string) error {
	release := acquireLock(ctx, c.opts.LockFile, c.opts.LockTimeout, c.logger)
	defer release()

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, command); err != nil {
		return fmt.Errorf("write command to %s: %w", c.endpoint.Address, err)
	}
	c.logger.Debug("command sent", logging.Int("bytes", len(command)))
	return nil
}

// Check opens and immediately closes the endpoint.
func (c *Client) Check(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

func (c *Client) dial(ctx context.Context) (io.WriteCloser, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	conn, err := dialEndpoint(dialCtx, c.endpoint)
	if err != nil {
		return nil, unavailable(c.endpoint, err)
	}
	return conn, nil
}
