package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "send COMMAND...",
		Short: "Send a raw command line to the player",
		Example: "  search-menuctl send cycle pause\n" +
			"  search-menuctl send -- seek -10",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.TrimSpace(strings.Join(args, " "))
			if line == "" {
				return errors.New("command is empty")
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}
			if err := client.Send(cmd.Context(), line+"\n"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %q to %s\n", line, client.Endpoint().Address)
			return nil
		},
	}
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the player control endpoint accepts connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			if err := client.Check(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Player reachable at %s\n", client.Endpoint().Address)
			return nil
		},
	}
}
