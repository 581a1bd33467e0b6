package menu

// Mode selects which formatter builds the menu.
type Mode string

const (
	ModeBinding     Mode = "binding"
	ModeBindingFull Mode = "binding-full"
	ModePlaylist    Mode = "playlist"
	ModeCommand     Mode = "command"
	ModeProperty    Mode = "property"
	ModeAudioTrack  Mode = "audio-track"
	ModeSubTrack    Mode = "sub-track"
)

// Modes lists every supported mode in a stable order.
func Modes() []Mode {
	return []Mode{
		ModeBinding,
		ModeBindingFull,
		ModePlaylist,
		ModeCommand,
		ModeProperty,
		ModeAudioTrack,
		ModeSubTrack,
	}
}

// Valid reports whether m names a supported mode.
func (m Mode) Valid() bool {
	_, ok := formatters[m]
	return ok
}

func (m Mode) String() string { return string(m) }

// Entry is one menu line and the player command it stands for.
// Action is the complete newline-terminated command written to the player.
type Entry struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Lookup returns the first entry whose label equals selection byte for byte.
func Lookup(entries []Entry, selection string) (Entry, bool) {
	for _, entry := range entries {
		if entry.Label == selection {
			return entry, true
		}
	}
	return Entry{}, false
}
