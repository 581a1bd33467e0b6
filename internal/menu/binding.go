package menu

import (
	"encoding/json"
	"strings"
)

const (
	// ShadowedKey replaces the accelerator of a binding that loses its key
	// to a higher-priority binding.
	ShadowedKey = "shadowed"

	ignoreCommand = "ignore"
)

// Binding is one input binding as reported by the player.
type Binding struct {
	Key      string  `json:"key"`
	Cmd      string  `json:"cmd"`
	Comment  string  `json:"comment"`
	Priority float64 `json:"priority"`
}

// ParseBindings decodes a JSON binding list and drops bindings whose command
// is empty or "ignore".
func ParseBindings(raw string) ([]Binding, error) {
	var decoded []Binding
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	bindings := decoded[:0]
	for _, b := range decoded {
		if b.Cmd == "" || b.Cmd == ignoreCommand {
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// Shadowed reports, per binding, whether another binding on the same key
// has a strictly higher priority. The result does not depend on list order.
func Shadowed(bindings []Binding) []bool {
	top := make(map[string]float64, len(bindings))
	for _, b := range bindings {
		if current, ok := top[b.Key]; !ok || b.Priority > current {
			top[b.Key] = b.Priority
		}
	}
	shadowed := make([]bool, len(bindings))
	for i, b := range bindings {
		shadowed[i] = b.Priority < top[b.Key]
	}
	return shadowed
}

// BindingLabel renders b with the accelerator key. In full mode a comment is
// shown after the raw command instead of replacing it.
func BindingLabel(b Binding, key string, full bool) string {
	text := b.Comment
	if text == "" {
		text = b.Cmd
	}
	var sb strings.Builder
	if full && text != b.Cmd {
		sb.WriteString(b.Cmd)
		sb.WriteString(" (")
		sb.WriteString(key)
		sb.WriteString(") ")
		sb.WriteString(text)
		return sb.String()
	}
	sb.WriteString(text)
	sb.WriteString(" (")
	sb.WriteString(key)
	sb.WriteString(")")
	return sb.String()
}

func formatBindings(mode Mode, raw string) ([]Entry, error) {
	bindings, err := ParseBindings(raw)
	if err != nil {
		return nil, malformed(mode, "decode "+EnvBinding, err)
	}
	shadowed := Shadowed(bindings)
	entries := make([]Entry, 0, len(bindings))
	for i, b := range bindings {
		key := b.Key
		if shadowed[i] {
			key = ShadowedKey
		}
		entries = append(entries, Entry{
			Label:  BindingLabel(b, key, mode == ModeBindingFull),
			Action: b.Cmd + "\n",
		})
	}
	return entries, nil
}
