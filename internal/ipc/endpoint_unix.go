//go:build !windows

package ipc

import (
	"context"
	"fmt"
	"io"
	"net"
)

// PlatformEndpoint picks the Unix domain socket.
func PlatformEndpoint(socketPath, _ string) Endpoint {
	return Endpoint{Network: NetworkUnix, Address: socketPath}
}

func dialEndpoint(ctx context.Context, endpoint Endpoint) (io.WriteCloser, error) {
	if endpoint.Network != NetworkUnix {
		return nil, fmt.Errorf("network %q is not supported on this platform", endpoint.Network)
	}
	var dialer net.Dialer
	return dialer.DialContext(ctx, NetworkUnix, endpoint.Address)
}
