package caseapp

// NewCommand creates and returns a new Command configured by the provided
// ConfigureCommandFunc functions.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	for _, config := range configs {
		config(cmd)
	}
	return cmd
}

// Set applies additional configuration functions to the command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithCommandName sets the name used to identify and list the command.
func WithCommandName(canonical string, aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = NewName(canonical, aliases...)
	}
}

// WithCommandGroup assigns the command to a named group. Grouped commands
// render under a "<Group> commands:" header.
func WithCommandGroup(group string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Group = group
	}
}

// WithCommandDescription sets the summary shown next to the command name in
// the command list.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		if command.Help == nil {
			command.Help = &Help{}
		}
		command.Help.Summary = description
	}
}

// SetCommandHidden marks the command as hidden. Hidden commands only render
// when help is requested with showHidden set.
func SetCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}

// WithHelp attaches the command's own Help document. A summary set earlier
// via WithCommandDescription is carried over when the new document has
// none.
func WithHelp(help *Help) ConfigureCommandFunc {
	return func(command *Command) {
		if command.Help != nil && command.Help.Summary != "" && help != nil && help.Summary == "" {
			help.Summary = command.Help.Summary
		}
		command.Help = help
	}
}

// WithSubcommands appends sub-commands, rendered by PrintCommandTree.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}
