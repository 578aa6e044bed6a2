package main

import (
	"os"

	"github.com/bianoble/blaze/cmd/blaze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
