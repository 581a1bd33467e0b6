package menu

// Environment variables carrying the mode selector and payloads.
const (
	EnvMode       = "SEARCH_MENU_MODE"
	EnvBinding    = "SEARCH_MENU_BINDING"
	EnvPlaylist   = "SEARCH_MENU_PLAYLIST"
	EnvCommand    = "SEARCH_MENU_COMMAND"
	EnvProperty   = "SEARCH_MENU_PROPERTY"
	EnvAudioTrack = "SEARCH_MENU_AUDIO_TRACK"
	EnvSubTrack   = "SEARCH_MENU_SUB_TRACK"
)

// Payload is a raw mode payload. Present is false when the source never
// supplied it, which is different from an empty payload.
type Payload struct {
	Text    string
	Present bool
}

// Text wraps s as a present payload.
func Text(s string) Payload {
	return Payload{Text: s, Present: true}
}

// Input bundles the mode selector with every mode's raw payload.
type Input struct {
	Mode       Mode
	Binding    Payload
	Playlist   Payload
	Command    Payload
	Property   Payload
	AudioTrack Payload
	SubTrack   Payload
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// InputFromEnv reads the input bundle through lookup.
func InputFromEnv(lookup LookupFunc) Input {
	read := func(key string) Payload {
		value, ok := lookup(key)
		return Payload{Text: value, Present: ok}
	}
	mode, _ := lookup(EnvMode)
	return Input{
		Mode:       Mode(mode),
		Binding:    read(EnvBinding),
		Playlist:   read(EnvPlaylist),
		Command:    read(EnvCommand),
		Property:   read(EnvProperty),
		AudioTrack: read(EnvAudioTrack),
		SubTrack:   read(EnvSubTrack),
	}
}

// payloadFor returns the payload consumed by mode and the variable it is read from.
func (in Input) payloadFor(mode Mode) (Payload, string) {
	switch mode {
	case ModeBinding, ModeBindingFull:
		return in.Binding, EnvBinding
	case ModePlaylist:
		return in.Playlist, EnvPlaylist
	case ModeCommand:
		return in.Command, EnvCommand
	case ModeProperty:
		return in.Property, EnvProperty
	case ModeAudioTrack:
		return in.AudioTrack, EnvAudioTrack
	case ModeSubTrack:
		return in.SubTrack, EnvSubTrack
	default:
		return Payload{}, ""
	}
}
