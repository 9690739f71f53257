package main

import (
	"os"

	"github.com/agentbank/foundry/cmd/wizard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
