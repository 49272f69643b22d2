package completion

import (
	"strings"
)

// Generator renders a completion script for one shell.
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the Generator for the given shell, defaulting to
// bash for unknown shells.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return &BashGenerator{}
	}
}

// Generate renders the completion script for programName under the given
// shell.
func Generate(shell, programName string, data CompletionData) string {
	return GetGenerator(shell).Generate(programName, data)
}

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapeZsh(desc string) string {
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	return desc
}

func escapePowerShell(desc string) string {
	desc = strings.ReplaceAll(desc, "`", "``")
	desc = strings.ReplaceAll(desc, `"`, "`\"")
	desc = strings.ReplaceAll(desc, `$`, "`$")
	return desc
}

// option renders a flag as it appears on the command line.
func (f Flag) option() string {
	return "--" + f.Long
}
