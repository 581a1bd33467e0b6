package menu

import (
	"strconv"
	"strings"
)

// PlaylistLines splits a newline separated playlist. A final line terminator
// does not start another entry; CRLF endings are accepted.
func PlaylistLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// BaseName returns the text after the last slash or backslash.
func BaseName(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}

func formatPlaylist(_ Mode, raw string) ([]Entry, error) {
	lines := PlaylistLines(raw)
	entries := make([]Entry, 0, len(lines))
	for pos, line := range lines {
		label := BaseName(line)
		// Unlabelled lines still hold their playlist position but print
		// nothing; an empty selection never dispatches.
		if label == "" {
			continue
		}
		entries = append(entries, Entry{
			Label:  label,
			Action: "no-osd set playlist-pos " + strconv.Itoa(pos) + "\n",
		})
	}
	return entries, nil
}
