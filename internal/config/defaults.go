package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName                 = "search-menu"
	defaultSocketPath       = "/tmp/mpvsocket"
	defaultPipeName         = `\\.\pipe\mpvsocket`
	defaultConnectTimeoutMS = 2000
	defaultLockTimeoutMS    = 500
	defaultLogLevel         = "warn"
	defaultLogFormat        = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Player: Player{
			SocketPath:       defaultSocketPath,
			PipeName:         defaultPipeName,
			ConnectTimeoutMS: defaultConnectTimeoutMS,
		},
		Dispatch: Dispatch{
			LockFile:      defaultLockFile(),
			LockTimeoutMS: defaultLockTimeoutMS,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

func defaultLockFile() string {
	return filepath.Join(xdg.RuntimeDir, appName, "dispatch.lock")
}
