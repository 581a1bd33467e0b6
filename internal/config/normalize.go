package config

import (
	"fmt"
	"runtime"
	"strings"
)

func (c *Config) normalize(lookup func(string) (string, bool)) error {
	c.Player.SocketPath = strings.TrimSpace(c.Player.SocketPath)
	c.Player.PipeName = strings.TrimSpace(c.Player.PipeName)
	c.Dispatch.LockFile = strings.TrimSpace(c.Dispatch.LockFile)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.File = strings.TrimSpace(c.Logging.File)

	if override, ok := lookup(EnvSocket); ok && strings.TrimSpace(override) != "" {
		if runtime.GOOS == "windows" {
			c.Player.PipeName = strings.TrimSpace(override)
		} else {
			c.Player.SocketPath = strings.TrimSpace(override)
		}
	}

	var err error
	if c.Player.SocketPath, err = expandPath(c.Player.SocketPath); err != nil {
		return fmt.Errorf("player.socket_path: %w", err)
	}
	if c.Dispatch.LockFile, err = expandPath(c.Dispatch.LockFile); err != nil {
		return fmt.Errorf("dispatch.lock_file: %w", err)
	}
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}
