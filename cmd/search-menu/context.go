package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"searchmenu/internal/config"
	"searchmenu/internal/dispatch"
	"searchmenu/internal/ipc"
	"searchmenu/internal/logging"
	"searchmenu/internal/menu"
)

type commandContext struct {
	lookup menu.LookupFunc
}

func newCommandContext(lookup menu.LookupFunc) *commandContext {
	return &commandContext{lookup: lookup}
}

func (c *commandContext) run(ctx context.Context, out io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, _, _, err := config.LoadEnv("", c.lookup)
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	in := menu.InputFromEnv(c.lookup)
	outcome, err := dispatch.New(newClient(cfg, logger), out, logger).Run(ctx, in, args)
	if err != nil {
		return err
	}
	logger.Debug("run finished", logging.String("outcome", outcome.String()))
	return nil
}

func newClient(cfg *config.Config, logger *slog.Logger) *ipc.Client {
	endpoint := ipc.PlatformEndpoint(cfg.Player.SocketPath, cfg.Player.PipeName)
	return ipc.NewClient(endpoint, ipc.Options{
		ConnectTimeout: cfg.ConnectTimeout(),
		LockFile:       cfg.Dispatch.LockFile,
		LockTimeout:    cfg.LockTimeout(),
		Logger:         logger,
	})
}
