package menu

import "strings"

func formatProperties(_ Mode, raw string) ([]Entry, error) {
	tokens := strings.Split(raw, ",")
	entries := make([]Entry, 0, len(tokens))
	for _, name := range tokens {
		// Empty tokens would print blank, unselectable lines.
		if name == "" {
			continue
		}
		entries = append(entries, Entry{
			Label:  name,
			Action: ScriptMessage("search_menu-property", name),
		})
	}
	return entries, nil
}
