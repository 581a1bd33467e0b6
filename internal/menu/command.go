package menu

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ScriptName is the script that receives command and property selections.
const ScriptName = "search_menu"

// Argument is one declared argument of a player command.
type Argument struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional"`
}

// CommandSpec describes a player command and its arguments.
type CommandSpec struct {
	Name string     `json:"name"`
	Args []Argument `json:"args"`
}

// Signature renders the command name followed by <arg> for required and
// [<arg>] for optional arguments.
func (c CommandSpec) Signature() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, arg := range c.Args {
		if arg.Optional {
			sb.WriteString(" [<")
			sb.WriteString(arg.Name)
			sb.WriteString(">]")
			continue
		}
		sb.WriteString(" <")
		sb.WriteString(arg.Name)
		sb.WriteString(">")
	}
	return sb.String()
}

// ParseCommands decodes a JSON command list and drops commands named "ignore".
func ParseCommands(raw string) ([]CommandSpec, error) {
	var decoded []CommandSpec
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	commands := decoded[:0]
	for i, c := range decoded {
		if c.Name == "" {
			return nil, fmt.Errorf("command %d has no name", i)
		}
		if c.Name == ignoreCommand {
			continue
		}
		commands = append(commands, c)
	}
	return commands, nil
}

// ScriptMessage builds a script-message-to line addressed to ScriptName.
func ScriptMessage(message string, args ...string) string {
	parts := append([]string{"script-message-to", ScriptName, message}, args...)
	return strings.Join(parts, " ") + "\n"
}

func formatCommands(mode Mode, raw string) ([]Entry, error) {
	commands, err := ParseCommands(raw)
	if err != nil {
		return nil, malformed(mode, "decode "+EnvCommand, err)
	}
	entries := make([]Entry, 0, len(commands))
	for _, c := range commands {
		label := c.Signature()
		entries = append(entries, Entry{
			Label:  label,
			Action: ScriptMessage("search_menu-command", "'"+label+"'"),
		})
	}
	return entries, nil
}
