package main

import (
	"os"

	"github.com/dylan/gitscribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
