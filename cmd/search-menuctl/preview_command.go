package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"searchmenu/internal/menu"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var mode string
	var filter string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the entries and player commands for the current environment",
		Long: "Builds the menu the way search-menu would from the SEARCH_MENU_* environment\n" +
			"and prints each label next to the command its selection sends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ctx.input()
			if strings.TrimSpace(mode) != "" {
				in.Mode = menu.Mode(strings.TrimSpace(mode))
			}
			if !in.Mode.Valid() {
				return fmt.Errorf("unknown mode %q (expected one of %s)", in.Mode, modeList())
			}

			entries, err := menu.Build(in)
			if err != nil {
				return err
			}
			entries = filterEntries(entries, filter)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if isTerminal(out) {
				fmt.Fprintln(out, entryTable(entries))
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\n", entry.Label, strconv.Quote(entry.Action))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Mode to preview (defaults to SEARCH_MENU_MODE)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show labels containing this text (case-insensitive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}

// filterEntries keeps entries whose label contains filter under Unicode case folding.
func filterEntries(entries []menu.Entry, filter string) []menu.Entry {
	if filter == "" {
		return entries
	}
	fold := cases.Fold()
	needle := fold.String(filter)
	kept := make([]menu.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(fold.String(entry.Label), needle) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func modeList() string {
	modes := menu.Modes()
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
