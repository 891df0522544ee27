package model

import "strings"

// CommandKind enumerates the built-in commands. Anything unrecognized is
// CommandFreeText and goes to the backend as conversation.
type CommandKind int

const (
	CommandFreeText CommandKind = iota
	CommandHelp
	CommandIngest
	CommandSpinProfile
	CommandAmplify
	CommandCareerMix
	CommandChat
	CommandClear
	CommandStatus
	CommandExit
)

type commandDef struct {
	word string
	kind CommandKind
}

// Listed in the order help shows them.
var commandTable = []commandDef{
	{"help", CommandHelp},
	{"spin-profile", CommandSpinProfile},
	{"amplify", CommandAmplify},
	{"career-mix-analysis", CommandCareerMix},
	{"chat", CommandChat},
	{"ingest", CommandIngest},
	{"status", CommandStatus},
	{"clear", CommandClear},
	{"exit", CommandExit},
}

func (k CommandKind) String() string {
	if k == CommandFreeText {
		return "free-text"
	}
	for _, def := range commandTable {
		if def.kind == k {
			return def.word
		}
	}
	return "unknown"
}

// Command is a parsed input line.
type Command struct {
	Kind CommandKind
	Word string   // first token as typed
	Args []string // remaining tokens
	Raw  string   // trimmed input line
}

// ArgText joins the arguments with single spaces.
func (c Command) ArgText() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits line on whitespace and matches the first word
// case-insensitively against the command vocabulary.
func ParseCommand(line string) Command {
	raw := strings.TrimSpace(line)
	fields := strings.Fields(raw)
	cmd := Command{Kind: CommandFreeText, Raw: raw}
	if len(fields) == 0 {
		return cmd
	}

	cmd.Word = fields[0]
	cmd.Args = fields[1:]

	word := strings.ToLower(cmd.Word)
	for _, def := range commandTable {
		if def.word == word {
			cmd.Kind = def.kind
			break
		}
	}
	return cmd
}

// CommandWords lists the recognized command words.
func CommandWords() []string {
	words := make([]string, len(commandTable))
	for i, def := range commandTable {
		words[i] = def.word
	}
	return words
}
