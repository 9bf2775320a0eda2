package main

import (
	"fmt"
	"os"

	"github.com/dialoglint/dialoglint/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dialoglint:", err)
		os.Exit(1)
	}
}
