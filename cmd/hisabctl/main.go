package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SscSPs/hisab_manager/internal/cli"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands(os.Stdout) {
		commander.Register(c, "reports")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
