package main

import (
	"os"

	"github.com/satishbabariya/spanned-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
