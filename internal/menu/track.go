package menu

import (
	"strconv"
	"strings"
)

// Track listings separate lines with a literal backslash-n, not a newline.
const trackLineSeparator = `\n`

// Line markers for selectable tracks.
const (
	AudioMarker    = "A: "
	SubtitleMarker = "S: "
)

// Track is a selectable track with its 1-based id among matching lines.
type Track struct {
	ID    int
	Title string
}

// ParseTracks keeps the lines that start with marker and numbers them from 1.
// Other lines are dropped without consuming an id.
func ParseTracks(raw, marker string) []Track {
	var tracks []Track
	for _, line := range strings.Split(raw, trackLineSeparator) {
		title, ok := strings.CutPrefix(line, marker)
		if !ok {
			continue
		}
		tracks = append(tracks, Track{ID: len(tracks) + 1, Title: title})
	}
	return tracks
}

func formatAudioTracks(_ Mode, raw string) ([]Entry, error) {
	return trackEntries(raw, AudioMarker, "aid"), nil
}

func formatSubTracks(_ Mode, raw string) ([]Entry, error) {
	return trackEntries(raw, SubtitleMarker, "sid"), nil
}

func trackEntries(raw, marker, property string) []Entry {
	tracks := ParseTracks(raw, marker)
	entries := make([]Entry, 0, len(tracks))
	for _, track := range tracks {
		id := strconv.Itoa(track.ID)
		entries = append(entries, Entry{
			Label:  id + ": " + track.Title,
			Action: "set " + property + " " + id + "\n",
		})
	}
	return entries
}
