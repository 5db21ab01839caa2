package tui

import "strings"

// Command names accepted by the ':' prompt.
const (
	CmdTab     = "tab"
	CmdReadAll = "read-all"
	CmdSearch  = "search"
	CmdOpen    = "open"
	CmdClose   = "close"
	CmdSticker = "sticker"
	CmdImage   = "image"
	CmdLink    = "link"
	CmdHelp    = "help"
	CmdQuit    = "quit"
)

var commandAliases = map[string]string{
	"t":       CmdTab,
	"readall": CmdReadAll,
	"ra":      CmdReadAll,
	"s":       CmdSearch,
	"o":       CmdOpen,
	"img":     CmdImage,
	"camera":  CmdImage,
	"h":       CmdHelp,
	"q":       CmdQuit,
	"q!":      CmdQuit,
}

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
// Aliases resolve to their canonical name.
func ParseCommand(input string) Command {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if canonical, ok := commandAliases[cmd.Name]; ok {
		cmd.Name = canonical
	}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}
