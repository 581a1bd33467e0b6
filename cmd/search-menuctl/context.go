package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"searchmenu/internal/config"
	"searchmenu/internal/ipc"
	"searchmenu/internal/logging"
	"searchmenu/internal/menu"
)

type commandContext struct {
	lookup     menu.LookupFunc
	socketFlag *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(lookup menu.LookupFunc, socketFlag, configFlag *string) *commandContext {
	return &commandContext{
		lookup:     lookup,
		socketFlag: socketFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.LoadEnv(path, c.lookup)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
}

// endpoint applies --socket on top of the configured endpoint.
func (c *commandContext) endpoint() (ipc.Endpoint, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return ipc.Endpoint{}, err
	}
	socketPath, pipeName := cfg.Player.SocketPath, cfg.Player.PipeName
	if c.socketFlag != nil {
		if override := strings.TrimSpace(*c.socketFlag); override != "" {
			socketPath, pipeName = override, override
		}
	}
	return ipc.PlatformEndpoint(socketPath, pipeName), nil
}

func (c *commandContext) client() (*ipc.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}
	return ipc.NewClient(endpoint, ipc.Options{
		ConnectTimeout: cfg.ConnectTimeout(),
		LockFile:       cfg.Dispatch.LockFile,
		LockTimeout:    cfg.LockTimeout(),
		Logger:         c.logger(),
	}), nil
}

func (c *commandContext) input() menu.Input {
	return menu.InputFromEnv(c.lookup)
}
