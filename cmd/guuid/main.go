package main

import (
	"fmt"
	"os"

	"github.com/Lzww0608/guuid/v2/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "guuid:", err)
		os.Exit(1)
	}
}
