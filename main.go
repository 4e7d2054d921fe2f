package main

import (
	"fmt"
	"os"

	"github.com/abiral/fluency/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
