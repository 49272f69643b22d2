package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev cmd
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # Find the command word
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            cmd="${COMP_WORDS[i]}"
            break
        fi
    done

    if [[ "$cur" == -* ]]; then
        local flags=(%[2]s)

        case "${cmd}" in`, programName, strings.Join(flagWords(data.Flags), " ")))

	for _, cmd := range data.Commands {
		flags, ok := data.CommandFlags[cmd]
		if !ok || len(flags) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            %q)
                flags+=(%s)
                ;;`, cmd, strings.Join(flagWords(flags), " ")))
	}

	script.WriteString(`
        esac

        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    if [[ -z "$cmd" ]]; then
        local commands=(`)

	for _, cmd := range data.Commands {
		if !strings.Contains(cmd, " ") {
			script.WriteString(fmt.Sprintf("%q ", cmd))
		}
	}

	script.WriteString(fmt.Sprintf(`)
        COMPREPLY=( $(compgen -W "${commands[*]}" -- "$cur") )
        return
    fi

    # Sub-commands of the current command
    local subcommands=()
    case "${cmd}" in`))

	for _, cmd := range data.Commands {
		subs := subcommandsOf(data.Commands, cmd)
		if len(subs) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        %q)
            subcommands=(%s)
            ;;`, cmd, strings.Join(quoteAll(subs), " ")))
	}

	script.WriteString(fmt.Sprintf(`
    esac
    COMPREPLY=( $(compgen -W "${subcommands[*]}" -- "$cur") )
}

complete -F __%[1]s_completion %[1]s`, programName))

	return script.String()
}

func flagWords(flags []Flag) []string {
	words := make([]string, 0, len(flags))
	for _, f := range flags {
		words = append(words, f.option())
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// subcommandsOf lists the immediate children of path among the encoded
// command paths.
func subcommandsOf(commands []string, path string) []string {
	var subs []string
	prefix := path + " "
	for _, c := range commands {
		if strings.HasPrefix(c, prefix) && !strings.Contains(c[len(prefix):], " ") {
			subs = append(subs, c[len(prefix):])
		}
	}
	return subs
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return quoted
}
