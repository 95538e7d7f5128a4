package main

import (
	"os"

	"git.home.luguber.info/inful/giza/cmd/giza/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}
