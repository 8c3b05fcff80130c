package main

import (
	"os"

	"github.com/DBst-23/DBst-23/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
