package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "octolist",
		Usage:   "CLI GitHub Actions workflow summary",
		Version: "0.1.0",
		Description: `octolist lists the Actions workflows of a repository and prints a summary
of each one: lifecycle state, creation and update times, and when it last ran.

Both --owner and --repo are required.`,
		Flags:  flags,
		Action: RunReport,
	}
}
