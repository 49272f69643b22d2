package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName %[1]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $completions = @()
    $words = $commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() }
    $command = $words | Where-Object { $_ -notlike '-*' } | Select-Object -First 1

    if ($wordToComplete -like '-*') {
        $flags = @(`, programName))

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
            @{Name = "%s"; Description = "%s"}`, flag.option(), escapePowerShell(flag.Description)))
	}

	script.WriteString(`
        )
        switch ($command) {`)

	for _, cmd := range data.Commands {
		flags, ok := data.CommandFlags[cmd]
		if !ok || len(flags) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            "%s" {
                $flags += @(`, cmd))
		for _, flag := range flags {
			script.WriteString(fmt.Sprintf(`
                    @{Name = "%s"; Description = "%s"}`, flag.option(), escapePowerShell(flag.Description)))
		}
		script.WriteString(`
                )
            }`)
	}

	script.WriteString(`
        }
        $completions = $flags | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
        }
    } elseif (-not $command) {
        $commands = @(`)

	for _, cmd := range data.Commands {
		if strings.Contains(cmd, " ") {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            @{Name = "%s"; Description = "%s"}`, cmd, escapePowerShell(data.CommandDescriptions[cmd])))
	}

	script.WriteString(`
        )
        $completions = $commands | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'Command', $_.Description)
        }
    }

    $completions
}`)

	return script.String()
}
