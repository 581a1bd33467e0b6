package menu

// formatter builds the entries for one mode from its raw payload.
type formatter func(mode Mode, raw string) ([]Entry, error)

var formatters = map[Mode]formatter{
	ModeBinding:     formatBindings,
	ModeBindingFull: formatBindings,
	ModePlaylist:    formatPlaylist,
	ModeCommand:     formatCommands,
	ModeProperty:    formatProperties,
	ModeAudioTrack:  formatAudioTracks,
	ModeSubTrack:    formatSubTracks,
}

// Build returns the entries for in.Mode in input order. An unsupported mode
// yields no entries and no error. Either every entry is returned or none is.
func Build(in Input) ([]Entry, error) {
	format, ok := formatters[in.Mode]
	if !ok {
		return nil, nil
	}
	payload, env := in.payloadFor(in.Mode)
	if !payload.Present {
		return nil, malformed(in.Mode, env+" is not set", nil)
	}
	return format(in.Mode, payload.Text)
}

// Labels projects entries onto their labels.
func Labels(entries []Entry) []string {
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
	}
	return labels
}
