// Package completion generates shell completion scripts from a program's
// help model. Generation is pure: metadata in, script text out; installing
// the script is the caller's concern.
package completion

import (
	caseapp "github.com/MaciejG604/case-app"
)

// Flag describes one completable option.
type Flag struct {
	Long        string // canonical name, without dashes
	Short       string // single-rune alias, without dash; may be empty
	Description string
	TakesValue  bool
}

// CompletionData is the flattened view of a program's commands and flags
// consumed by the script generators. Sub-commands are encoded as
// space-separated paths ("env show"), matching their command line form.
type CompletionData struct {
	Commands            []string
	CommandDescriptions map[string]string
	Flags               []Flag // options shared across all commands
	CommandFlags        map[string][]Flag
}

// FromCommandsHelp flattens a CommandsHelp into CompletionData. Hidden
// commands and options are left out; completion mirrors default help.
func FromCommandsHelp(ch *caseapp.CommandsHelp) CompletionData {
	data := CompletionData{
		CommandDescriptions: make(map[string]string),
		CommandFlags:        make(map[string][]Flag),
	}
	if ch.Base != nil {
		data.Flags = flagsFromArgs(ch.Base.Args)
	}
	for _, cmd := range ch.Commands {
		appendCommand(&data, "", cmd)
	}
	return data
}

func appendCommand(data *CompletionData, parentPath string, cmd *caseapp.Command) {
	if cmd.Hidden {
		return
	}
	path := cmd.Name.Canonical()
	if parentPath != "" {
		path = parentPath + " " + path
	}
	data.Commands = append(data.Commands, path)
	if cmd.Help != nil {
		data.CommandDescriptions[path] = cmd.Help.Summary
		if flags := flagsFromArgs(cmd.Help.Args); len(flags) > 0 {
			data.CommandFlags[path] = flags
		}
	}
	for _, sub := range cmd.Subcommands {
		appendCommand(data, path, sub)
	}
}

func flagsFromArgs(args []*caseapp.Arg) []Flag {
	flags := make([]Flag, 0, len(args))
	for _, a := range args {
		if a.Hidden {
			continue
		}
		flag := Flag{
			Long:        a.Name.Canonical(),
			Description: a.Description,
			TakesValue:  a.ValueLabel != "",
		}
		for _, alias := range a.Name.All(false) {
			if len(alias) == 2 && alias[0] == '-' && alias[1] != '-' {
				flag.Short = alias[1:]
				break
			}
		}
		flags = append(flags, flag)
	}
	return flags
}
