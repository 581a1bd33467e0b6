package main

import (
	"context"

	"github.com/spf13/cobra"

	"searchmenu/internal/menu"
)

func newRootCommand(lookup menu.LookupFunc) *cobra.Command {
	ctx := newCommandContext(lookup)

	return &cobra.Command{
		Use:                "search-menu [label]",
		Short:              "List player menu entries or dispatch a selected one",
		Args:               cobra.MaximumNArgs(1),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

// execute runs cmd on args without subcommand resolution. Cobra would route a
// label such as "completion" or "__complete" to its own hidden commands.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return cmd.RunE(cmd, args)
}
