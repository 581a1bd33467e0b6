package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}
	if err := c.validateDispatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePlayer() error {
	if c.Player.SocketPath == "" {
		return errors.New("player.socket_path must be set")
	}
	if c.Player.PipeName == "" {
		return errors.New("player.pipe_name must be set")
	}
	if c.Player.ConnectTimeoutMS <= 0 {
		return errors.New("player.connect_timeout_ms must be positive")
	}
	return nil
}

func (c *Config) validateDispatch() error {
	if c.Dispatch.LockTimeoutMS < 0 {
		return errors.New("dispatch.lock_timeout_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
