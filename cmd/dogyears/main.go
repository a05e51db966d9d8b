package main

import (
	"os"

	"dogyears/cmd/dogyears/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
