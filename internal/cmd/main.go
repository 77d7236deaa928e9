// Package cmd implements the schoox command line client.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/okian/schoox/internal/config"
	"github.com/okian/schoox/pkg/schoox"
)

const cliName = "schoox"

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	if len(args) == 2 && (args[1] == "-version" || args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	base := &Base{
		UI:         ui,
		LogWriter:  os.Stderr,
		LoadConfig: config.Load,
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  schoox.Version,
		Commands: Commands(base),
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return exitCode
}

// VersionCommand prints the client version.
type VersionCommand struct {
	*Base
}

func (c *VersionCommand) Synopsis() string {
	return "Print the client version"
}

func (c *VersionCommand) Help() string {
	return "Usage: schoox version"
}

func (c *VersionCommand) Run(_ []string) int {
	c.UI.Output(cliName + " " + schoox.Version)
	return 0
}
