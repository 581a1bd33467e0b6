package menu_test

import (
	"strconv"
	"testing"

	"searchmenu/internal/menu"
)

func TestPlaylistEntries(t *testing.T) {
	raw := "/x/y/movie.mkv\nC:\\Videos\\clip.mp4\r\nhttps://example.com/watch/stream.m3u8\nplain.ogg\n"
	entries, err := menu.Build(menu.Input{Mode: menu.ModePlaylist, Playlist: menu.Text(raw)})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	want := []string{"movie.mkv", "clip.mp4", "stream.m3u8", "plain.ogg"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), entries)
	}
	for i, entry := range entries {
		if entry.Label != want[i] {
			t.Fatalf("entry %d label = %q, want %q", i, entry.Label, want[i])
		}
		wantAction := "no-osd set playlist-pos " + strconv.Itoa(i) + "\n"
		if entry.Action != wantAction {
			t.Fatalf("entry %d action = %q, want %q", i, entry.Action, wantAction)
		}
	}
}

// Lines with no final segment print nothing, so the listing can be shorter
// than the playlist. An empty label could only be selected by an empty
// argument, which must stay a no-op.
func TestPlaylistBlankLineKeepsPositions(t *testing.T) {
	entries, err := menu.Build(menu.Input{Mode: menu.ModePlaylist, Playlist: menu.Text("a.mkv\n\n/dir/\nb.mkv")})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[1].Label != "b.mkv" || entries[1].Action != "no-osd set playlist-pos 3\n" {
		t.Fatalf("unexpected entry %+v", entries[1])
	}
}

func TestPlaylistEmpty(t *testing.T) {
	entries, err := menu.Build(menu.Input{Mode: menu.ModePlaylist, Playlist: menu.Text("")})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/x/y/movie.mkv":     "movie.mkv",
		`C:\media\song.flac`: "song.flac",
		"movie.mkv":          "movie.mkv",
		"/trailing/":         "",
	}
	for in, want := range tests {
		if got := menu.BaseName(in); got != want {
			t.Fatalf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
