// caseapp-demo renders the help of a fictional deployment tool, showing the
// single- and multi-command layouts, the command tree and completion script
// generation. Pass --detailed to include hidden items, --tree for the
// command tree, or --completion <shell> for a completion script.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	caseapp "github.com/MaciejG604/case-app"
	"github.com/MaciejG604/case-app/completion"
)

type deployOptions struct {
	Cluster  string   `caseapp:"name:cluster c;desc:Target cluster name"`
	Replicas int      `caseapp:"desc:Number of replicas to run"`
	Env      []string `caseapp:"name:env e;desc:Environment overrides;group:Runtime"`
	DryRun   bool     `caseapp:"name:dry-run;desc:Print the plan without applying it"`
	Debug    bool     `caseapp:"hidden;desc:Verbose internal logging;group:Runtime"`
}

type statusOptions struct {
	Format string `caseapp:"desc:Output format;label:plain|json"`
	Watch  *bool  `caseapp:"name:watch w;desc:Keep refreshing until interrupted"`
}

func commandSet() *caseapp.CommandSet {
	deployHelp, err := caseapp.NewHelpFromStruct("demo deploy", &deployOptions{})
	if err != nil {
		fail(err)
	}
	deployHelp.Summary = "Roll a service out to a cluster"

	statusHelp, err := caseapp.NewHelpFromStruct("demo status", &statusOptions{})
	if err != nil {
		fail(err)
	}
	statusHelp.Summary = "Show the state of deployed services"

	return &caseapp.CommandSet{
		ProgName:    "demo",
		Description: "Deploy and inspect services",
		Commands: []*caseapp.Command{
			caseapp.NewCommand(
				caseapp.WithCommandName("deploy"),
				caseapp.WithHelp(deployHelp),
			),
			caseapp.NewCommand(
				caseapp.WithCommandName("status", "st"),
				caseapp.WithHelp(statusHelp),
			),
			caseapp.NewCommand(
				caseapp.WithCommandName("env"),
				caseapp.WithCommandDescription("Manage service environments"),
				caseapp.WithSubcommands(
					caseapp.NewCommand(caseapp.WithCommandName("show"), caseapp.WithCommandDescription("Print the active environment")),
					caseapp.NewCommand(caseapp.WithCommandName("set"), caseapp.WithCommandDescription("Set environment keys")),
				),
			),
			caseapp.NewCommand(
				caseapp.WithCommandName("doctor"),
				caseapp.SetCommandHidden(true),
			),
		},
		Summary: "Run 'demo <COMMAND> --help' for command details.",
	}
}

func main() {
	help := commandSet().Help()
	format := caseapp.NewHelpFormat().WithAutoTerminalWidth()

	switch {
	case len(os.Args) > 2 && os.Args[1] == "--completion":
		fmt.Print(completion.Generate(os.Args[2], "demo", completion.FromCommandsHelp(help)))
	case len(os.Args) > 1 && os.Args[1] == "--tree":
		help.PrintCommandTree(os.Stdout, nil)
	case len(os.Args) > 1 && os.Args[1] == "--detailed":
		printColored(help.Usage(format, true))
	default:
		printColored(help.Usage(format, false))
	}
}

var header = color.New(color.Bold)

// printColored bolds the usage and section header lines; the rendered text
// itself stays untouched.
func printColored(text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			fmt.Println()
		}
		if len(line) > 0 && (line[len(line)-1] == ':' || i == 0) {
			header.Print(line)
			continue
		}
		fmt.Print(line)
	}
	fmt.Println()
}

func fail(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
