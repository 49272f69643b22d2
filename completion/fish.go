package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		script.WriteString(completeFlag(programName, "", flag))
	}

	for _, cmd := range data.Commands {
		desc := data.CommandDescriptions[cmd]
		if strings.Contains(cmd, " ") {
			parts := strings.SplitN(cmd, " ", 2)
			script.WriteString(fmt.Sprintf(
				"complete -c %s -f -n '__fish_seen_subcommand_from %s' -a '%s' -d '%s'\n",
				programName, parts[0], parts[1], escapeFish(desc)))
			continue
		}
		script.WriteString(fmt.Sprintf(
			"complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, cmd, escapeFish(desc)))
	}

	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			script.WriteString(completeFlag(programName, cmd, flag))
		}
	}

	return script.String()
}

func completeFlag(programName, cmd string, flag Flag) string {
	line := fmt.Sprintf("complete -c %s -f", programName)
	if cmd != "" {
		line = fmt.Sprintf("%s -n '__fish_seen_subcommand_from %s'", line, cmd)
	}
	line = fmt.Sprintf("%s -l %s", line, flag.Long)
	if flag.Short != "" {
		line = fmt.Sprintf("%s -s %s", line, flag.Short)
	}
	if flag.TakesValue {
		line += " -r"
	}
	return fmt.Sprintf("%s -d '%s'\n", line, escapeFish(flag.Description))
}
