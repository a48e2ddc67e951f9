package main

import (
	"os"

	"github.com/okian/scouthub/cmd/scoutctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
