package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -C \`, programName))

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
        '*%s[%s]' \`, flag.option(), escapeZsh(flag.Description)))
	}

	script.WriteString(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _values 'commands' \`)

	for _, cmd := range data.Commands {
		if strings.Contains(cmd, " ") {
			continue
		}
		script.WriteString(fmt.Sprintf(`
                '%s[%s]' \`, cmd, escapeZsh(data.CommandDescriptions[cmd])))
	}

	script.WriteString(`
            ;;
        args)
            case $words[1] in`)

	for _, cmd := range data.Commands {
		flags, ok := data.CommandFlags[cmd]
		if !ok || len(flags) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
                %s)
                    _arguments \`, cmd))
		for _, flag := range flags {
			script.WriteString(fmt.Sprintf(`
                        '*%s[%s]' \`, flag.option(), escapeZsh(flag.Description)))
		}
		script.WriteString(`
                    ;;`)
	}

	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

__%[1]s_completion "$@"`, programName))

	return script.String()
}
