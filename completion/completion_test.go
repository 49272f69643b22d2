package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caseapp "github.com/MaciejG604/case-app"
)

func testData(t *testing.T) CompletionData {
	t.Helper()
	set := &caseapp.CommandSet{
		ProgName: "prog",
		Commands: []*caseapp.Command{
			caseapp.NewCommand(
				caseapp.WithCommandName("env"),
				caseapp.WithHelp(&caseapp.Help{
					Summary: "Manage environments",
					Args: []*caseapp.Arg{
						caseapp.NewArg(caseapp.WithName("verbose", "v")),
						caseapp.NewArg(caseapp.WithName("file"), caseapp.WithValueLabel("path")),
					},
				}),
				caseapp.WithSubcommands(
					caseapp.NewCommand(caseapp.WithCommandName("show"), caseapp.WithCommandDescription("Print env")),
					caseapp.NewCommand(caseapp.WithCommandName("set")),
				),
			),
			caseapp.NewCommand(caseapp.WithCommandName("status")),
			caseapp.NewCommand(caseapp.WithCommandName("doctor"), caseapp.SetCommandHidden(true)),
		},
	}
	return FromCommandsHelp(set.Help())
}

func TestFromCommandsHelp(t *testing.T) {
	data := testData(t)

	assert.Equal(t, []string{"env", "env show", "env set", "status"}, data.Commands)
	assert.Equal(t, "Manage environments", data.CommandDescriptions["env"])
	assert.Equal(t, "Print env", data.CommandDescriptions["env show"])
	assert.NotContains(t, data.Commands, "doctor", "hidden commands are not completed")

	require.Len(t, data.CommandFlags["env"], 2)
	verbose := data.CommandFlags["env"][0]
	assert.Equal(t, "verbose", verbose.Long)
	assert.Equal(t, "v", verbose.Short)
	assert.False(t, verbose.TakesValue)
	file := data.CommandFlags["env"][1]
	assert.Equal(t, "file", file.Long)
	assert.True(t, file.TakesValue)

	longs := make([]string, 0, len(data.Flags))
	for _, f := range data.Flags {
		longs = append(longs, f.Long)
	}
	assert.Equal(t, []string{"usage", "help"}, longs, "base flags come from the built-in help options")
}

func TestFromCommandsHelp_SkipsHiddenArgs(t *testing.T) {
	ch := &caseapp.CommandsHelp{
		ProgName: "prog",
		Base: &caseapp.Help{Args: []*caseapp.Arg{
			caseapp.NewArg(caseapp.WithName("shown")),
			caseapp.NewArg(caseapp.WithName("secret"), caseapp.SetHidden(true)),
		}},
	}

	data := FromCommandsHelp(ch)

	require.Len(t, data.Flags, 1)
	assert.Equal(t, "shown", data.Flags[0].Long)
}

func TestGetGenerator(t *testing.T) {
	assert.IsType(t, &ZshGenerator{}, GetGenerator("zsh"))
	assert.IsType(t, &FishGenerator{}, GetGenerator("fish"))
	assert.IsType(t, &PowerShellGenerator{}, GetGenerator("powershell"))
	assert.IsType(t, &BashGenerator{}, GetGenerator("bash"))
	assert.IsType(t, &BashGenerator{}, GetGenerator("anything-else"))
}

func TestBashGenerator(t *testing.T) {
	script := Generate("bash", "prog", testData(t))

	assert.Contains(t, script, "function __prog_completion()")
	assert.Contains(t, script, "complete -F __prog_completion prog")
	assert.Contains(t, script, "--usage --help -h")
	assert.Contains(t, script, `"env")`)
	assert.Contains(t, script, "--verbose -v --file")
	assert.Contains(t, script, `subcommands=("show" "set")`)
	assert.NotContains(t, script, "doctor")
}

func TestFishGenerator(t *testing.T) {
	script := Generate("fish", "prog", testData(t))

	assert.Contains(t, script, "complete -c prog -f -l usage")
	assert.Contains(t, script, "complete -c prog -f -n '__fish_use_subcommand' -a 'env' -d 'Manage environments'")
	assert.Contains(t, script, "complete -c prog -f -n '__fish_seen_subcommand_from env' -a 'show' -d 'Print env'")
	assert.Contains(t, script, "complete -c prog -f -n '__fish_seen_subcommand_from env' -l verbose -s v")
	assert.Contains(t, script, "-l file -r")
}

func TestZshGenerator(t *testing.T) {
	script := Generate("zsh", "prog", testData(t))

	assert.Contains(t, script, "#compdef prog")
	assert.Contains(t, script, "env")
	assert.Contains(t, script, "status")
	assert.NotContains(t, script, "doctor")
}

func TestPowerShellGenerator(t *testing.T) {
	script := Generate("powershell", "prog", testData(t))

	assert.Contains(t, script, "Register-ArgumentCompleter")
	assert.Contains(t, script, "prog")
	assert.Contains(t, script, "--usage")
}

func TestEscapeHelpers(t *testing.T) {
	assert.Equal(t, `a \"b\" \$c`, escapeBash(`a "b" $c`))
	assert.Equal(t, `it\'s`, escapeFish(`it's`))
	assert.Equal(t, `\[x\]`, escapeZsh(`[x]`))
	assert.Equal(t, "`\"x`\" `$y", escapePowerShell(`"x" $y`))
}
