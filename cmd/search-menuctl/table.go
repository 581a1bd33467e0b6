package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"searchmenu/internal/menu"
)

const commandColumnWidth = 60

// entryTable renders entries with their menu position, label and command.
func entryTable(entries []menu.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Label", "Command"})
	for i, entry := range entries {
		tw.AppendRow(table.Row{i + 1, entry.Label, strings.TrimSuffix(entry.Action, "\n")})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Command", WidthMax: commandColumnWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	tw.SetCaption("%d entries", len(entries))
	return tw.Render()
}

func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
