package ipc

// Endpoint networks.
const (
	NetworkUnix = "unix"
	NetworkPipe = "pipe"
)

// Endpoint addresses the player's control channel.
type Endpoint struct {
	Network string
	Address string
}

func (e Endpoint) String() string {
	return e.Network + ":" + e.Address
}

// DefaultEndpoint returns the player's well-known endpoint on this platform.
func DefaultEndpoint() Endpoint {
	return PlatformEndpoint(defaultSocketPath, defaultPipeName)
}

const (
	defaultSocketPath = "/tmp/mpvsocket"
	defaultPipeName   = `\\.\pipe\mpvsocket`
)
