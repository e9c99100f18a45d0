package main

import (
	"os"

	"github.com/talent-pool/talent-pool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
