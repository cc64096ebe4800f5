package main

import (
	"os"

	"github.com/mbhatt/taxtutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
