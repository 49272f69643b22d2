package caseapp

import (
	"fmt"
	"io"
	"strings"

	"github.com/ef-ds/deque"
)

// Command describes one sub-command of a multi-command program. Help holds
// the command's own options and descriptions; Subcommands only affect
// PrintCommandTree, the flat command list renders top-level commands.
type Command struct {
	Name        Name
	Group       string
	Hidden      bool
	Help        *Help
	Subcommands []*Command
}

// summary is the text shown next to the command name in the command list.
func (c *Command) summary() string {
	if c.Help == nil {
		return ""
	}
	return c.Help.Summary
}

// CommandsHelp is the aggregated help model for a multi-command program:
// options shared across all commands plus the per-command descriptors.
type CommandsHelp struct {
	ProgName    string
	Description string
	Base        *Help // options every command accepts; may be nil
	Commands    []*Command
	Summary     string // trailing block appended after the command list
}

// Usage renders the multi-command help text under the given format.
func (ch *CommandsHelp) Usage(format HelpFormat, showHidden bool) string {
	return renderCommandsHelp(ch, format, showHidden)
}

// DefaultUsage renders with the format's configured show-hidden default.
func (ch *CommandsHelp) DefaultUsage(format HelpFormat) string {
	return ch.Usage(format, format.defaultShowHidden)
}

// PrintUsage writes the rendered help text to writer, newline-terminated.
func (ch *CommandsHelp) PrintUsage(writer io.Writer, format HelpFormat, showHidden bool) {
	_, _ = io.WriteString(writer, ch.Usage(format, showHidden)+"\n")
}

// CommandSet is the registration surface of a multi-command program. It is
// assembled by the caller (or a derivation layer) and turned into a
// CommandsHelp by Help.
type CommandSet struct {
	ProgName    string
	Description string
	Commands    []*Command
	Default     *Command // command run when none is named; may be nil
	Summary     string
}

// Help assembles the CommandsHelp for the set. The base options are the
// built-in help options plus, when a default command is configured, that
// command's own options; on a name collision the first occurrence wins.
func (cs *CommandSet) Help() *CommandsHelp {
	base := DefaultBaseHelp(cs.ProgName)
	if cs.Default != nil && cs.Default.Help != nil {
		seen := make(map[string]struct{}, len(base.Args))
		for _, a := range base.Args {
			seen[a.Name.Primary()] = struct{}{}
		}
		for _, a := range cs.Default.Help.Args {
			if _, ok := seen[a.Name.Primary()]; ok {
				continue
			}
			seen[a.Name.Primary()] = struct{}{}
			base.Args = append(base.Args, a)
		}
	}

	return &CommandsHelp{
		ProgName:    cs.ProgName,
		Description: cs.Description,
		Base:        base,
		Commands:    cs.Commands,
		Summary:     cs.Summary,
	}
}

// DefaultBaseHelp returns the options every command accepts: --usage and
// -h/-help/--help, grouped under HelpGroup.
func DefaultBaseHelp(progName string) *Help {
	return &Help{
		ProgName: progName,
		Args: []*Arg{
			NewArg(WithName("usage"), WithGroup(HelpGroup), WithDescription("Print usage and exit")),
			NewArg(WithName("help", "h", "-help"), WithGroup(HelpGroup), WithDescription("Print help message and exit")),
		},
	}
}

// PrettyPrintConfig is used to print the accepted commands as a tree in
// PrintCommandTree.
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the start of a new top-level command
	NewCommandPrefix string
	// DefaultPrefix precedes sub-commands by default
	DefaultPrefix string
	// TerminalPrefix precedes commands which have no sub-commands
	TerminalPrefix string
	// OuterLevelBindPrefix is used for indentation, repeated once per level
	// under the command root. The root is at level 0.
	OuterLevelBindPrefix string
}

// PrintCommandTree writes the commands and their sub-commands as an
// indented tree, depth-first in declaration order. A nil config uses the
// default prefixes.
func (ch *CommandsHelp) PrintCommandTree(writer io.Writer, config *PrettyPrintConfig) {
	if config == nil {
		config = &PrettyPrintConfig{
			NewCommandPrefix:     " +",
			DefaultPrefix:        " │",
			TerminalPrefix:       " └",
			OuterLevelBindPrefix: "─",
		}
	}

	type node struct {
		cmd   *Command
		level int
	}
	stack := deque.New()
	for i := len(ch.Commands) - 1; i >= 0; i-- {
		stack.PushBack(node{ch.Commands[i], 0})
	}
	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		n := v.(node)

		start := config.DefaultPrefix
		switch {
		case n.level == 0:
			start = config.NewCommandPrefix
		case len(n.cmd.Subcommands) == 0:
			start = config.TerminalPrefix
		}
		line := start + strings.Repeat(config.OuterLevelBindPrefix, n.level) + " " + n.cmd.Name.Canonical()
		if desc := n.cmd.summary(); desc != "" {
			line += fmt.Sprintf(" %q", desc)
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return
		}

		for i := len(n.cmd.Subcommands) - 1; i >= 0; i-- {
			stack.PushBack(node{n.cmd.Subcommands[i], n.level + 1})
		}
	}
}
