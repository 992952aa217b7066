package main

import (
	"os"

	"github.com/softsage/chatembed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
