//go:build windows

package ipc

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const pipeBusyRetry = 20 * time.Millisecond

// PlatformEndpoint picks the named pipe.
func PlatformEndpoint(_, pipeName string) Endpoint {
	return Endpoint{Network: NetworkPipe, Address: pipeName}
}

func dialEndpoint(ctx context.Context, endpoint Endpoint) (io.WriteCloser, error) {
	if endpoint.Network == NetworkUnix {
		var dialer net.Dialer
		return dialer.DialContext(ctx, NetworkUnix, endpoint.Address)
	}
	return openPipe(ctx, endpoint.Address)
}

// openPipe opens the client end of a named pipe, retrying while every pipe
// instance is busy until ctx expires.
func openPipe(ctx context.Context, name string) (io.WriteCloser, error) {
	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	for {
		handle, err := windows.CreateFile(
			path,
			windows.GENERIC_READ|windows.GENERIC_WRITE,
			0,
			nil,
			windows.OPEN_EXISTING,
			windows.FILE_ATTRIBUTE_NORMAL,
			0,
		)
		if err == nil {
			return os.NewFile(uintptr(handle), name), nil
		}
		if !errors.Is(err, windows.ERROR_PIPE_BUSY) {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pipeBusyRetry):
		}
	}
}
