package main

import (
	"os"

	"github.com/pmattila/hostadm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
