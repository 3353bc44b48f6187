// main is the entry point for the benchwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/benchwatch/benchwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
