package main

import (
	"os"

	"github.com/0xlemi/raagnote/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
