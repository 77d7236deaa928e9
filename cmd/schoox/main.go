package main

import (
	"os"

	"github.com/okian/schoox/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
